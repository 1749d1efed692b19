// Package store persists leads in the project's local SQLite database.
//
// The schema is exactly the documented leads table; nothing is added beyond
// it. modernc.org/sqlite keeps the binary pure Go, so the scaffolded host
// needs no C toolchain.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vikabot/leadgen/internal/leads"
)

// DefaultFileName is the database file inside the project directory.
const DefaultFileName = "ai_hardware_leads.db"

// ErrDuplicate reports an insert whose linkedin_url is already recorded.
var ErrDuplicate = errors.New("lead already recorded")

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date_added TEXT,
	name TEXT NOT NULL,
	title TEXT,
	company TEXT,
	location TEXT,
	industry TEXT,
	company_size TEXT,
	linkedin_url TEXT UNIQUE,
	email_1 TEXT,
	email_2 TEXT,
	email_3 TEXT,
	phone TEXT,
	whatsapp TEXT,
	company_website TEXT,
	products_interest TEXT,
	lead_score INTEGER,
	priority TEXT,
	notes TEXT,
	next_action TEXT,
	status TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Store is a single-writer handle on the leads database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and ensures the
// documented schema exists. WAL mode and a busy timeout keep a concurrent
// reader from tripping over the writer.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create leads table: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records one lead. DateAdded defaults to today, Status to "New", and
// the priority column is derived from the score's bucket. Returns
// ErrDuplicate when the linkedin_url is already present.
func (s *Store) Insert(ctx context.Context, l leads.Lead) (int64, error) {
	if l.DateAdded == "" {
		l.DateAdded = s.now().Format("2006-01-02")
	}
	if l.Status == "" {
		l.Status = "New"
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (
			date_added, name, title, company, location, industry, company_size,
			linkedin_url, email_1, email_2, email_3, phone, whatsapp,
			company_website, products_interest, lead_score, priority,
			notes, next_action, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.DateAdded, l.Name, l.Title, l.Company, l.Location, l.Industry, l.CompanySize,
		l.LinkedInURL, l.Email1, l.Email2, l.Email3, l.Phone, l.WhatsApp,
		l.Website, l.ProductsInterest, l.Score, string(l.Priority()),
		l.Notes, l.NextAction, l.Status,
	)
	if err != nil {
		// Only the linkedin_url uniqueness violation means "already
		// recorded"; any other constraint failure is a real error.
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert lead %q: %w", l.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert lead %q: last id: %w", l.Name, err)
	}
	return id, nil
}

// All returns every lead, hottest score first. The priority column is
// denormalized for spreadsheet and ad hoc SQL consumers only; the score is
// the source of truth, and reads re-derive the label from it so a row edited
// outside this tool still reports the bucket its score dictates.
func (s *Store) All(ctx context.Context) ([]leads.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date_added, name, title, company, location, industry, company_size,
		       linkedin_url, email_1, email_2, email_3, phone, whatsapp,
		       company_website, products_interest, lead_score, notes, next_action, status
		FROM leads ORDER BY lead_score DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	var out []leads.Lead
	for rows.Next() {
		var l leads.Lead
		if err := rows.Scan(
			&l.DateAdded, &l.Name, &l.Title, &l.Company, &l.Location, &l.Industry, &l.CompanySize,
			&l.LinkedInURL, &l.Email1, &l.Email2, &l.Email3, &l.Phone, &l.WhatsApp,
			&l.Website, &l.ProductsInterest, &l.Score, &l.Notes, &l.NextAction, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return out, nil
}
