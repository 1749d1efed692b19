package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// DefaultExportFileName is the CSV export inside the project directory.
const DefaultExportFileName = "rak_sharjah_leads.csv"

// csvHeader mirrors the documented spreadsheet column order.
var csvHeader = []string{
	"Date Added", "Name", "Title", "Company", "Location", "Industry",
	"Company Size", "LinkedIn", "Email Option 1", "Email Option 2",
	"Email Option 3", "Phone", "WhatsApp", "Website", "Products Interest",
	"Lead Score", "Priority", "Status", "Next Action", "Notes",
}

// ExportCSV writes every lead to a CSV file at path, hottest first, and
// returns the number of exported rows.
func (s *Store) ExportCSV(ctx context.Context, path string) (int, error) {
	all, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for _, l := range all {
		record := []string{
			l.DateAdded, l.Name, l.Title, l.Company, l.Location, l.Industry,
			l.CompanySize, l.LinkedInURL, l.Email1, l.Email2, l.Email3,
			l.Phone, l.WhatsApp, l.Website, l.ProductsInterest,
			strconv.Itoa(l.Score), string(l.Priority()), l.Status, l.NextAction, l.Notes,
		}
		if err := w.Write(record); err != nil {
			return 0, fmt.Errorf("write lead %q: %w", l.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close export: %w", err)
	}
	return len(all), nil
}
