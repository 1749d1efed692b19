package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikabot/leadgen/internal/leads"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndListOrderedByScore(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	low := leads.Lead{Name: "Low", LinkedInURL: "https://linkedin.com/in/low", Score: 60}
	high := leads.Lead{Name: "High", LinkedInURL: "https://linkedin.com/in/high", Score: 97}

	_, err := s.Insert(ctx, low)
	require.NoError(t, err)
	_, err = s.Insert(ctx, high)
	require.NoError(t, err)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "High", all[0].Name)
	assert.Equal(t, "Low", all[1].Name)
}

func TestInsertFillsDefaults(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC) }

	_, err := s.Insert(context.Background(), leads.Lead{
		Name: "X", LinkedInURL: "https://linkedin.com/in/x", Score: 92,
	})
	require.NoError(t, err)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2026-08-25", all[0].DateAdded)
	assert.Equal(t, "New", all[0].Status)
	assert.Equal(t, leads.PriorityHot, all[0].Priority())
}

func TestInsertDuplicateLinkedInURL(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	l := leads.Lead{Name: "Dup", LinkedInURL: "https://linkedin.com/in/dup", Score: 80}
	_, err := s.Insert(ctx, l)
	require.NoError(t, err)

	_, err = s.Insert(ctx, l)
	require.ErrorIs(t, err, ErrDuplicate)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestInsertErrorsAreNotMaskedAsDuplicates(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Insert(context.Background(), leads.Lead{
		Name: "Y", LinkedInURL: "https://linkedin.com/in/y", Score: 70,
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicate)
}

func TestPriorityDerivesFromScoreNotStoredColumn(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, leads.Lead{
		Name: "Z", LinkedInURL: "https://linkedin.com/in/z", Score: 92,
	})
	require.NoError(t, err)

	// a row edited outside this tool: stored label out of step with the score
	_, err = s.db.ExecContext(ctx, `UPDATE leads SET priority = 'Nurture' WHERE name = 'Z'`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultExportFileName)
	_, err = s.ExportCSV(ctx, path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Hot", records[1][16], "exported bucket follows the score")
}

func TestSeedFixtureRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	for _, l := range leads.SampleLeads() {
		_, err := s.Insert(ctx, l)
		require.NoError(t, err)
	}

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 15)
	assert.Equal(t, "Fatima Mohammed", all[0].Name, "score 95 leads the list")
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	for _, l := range leads.SampleLeads() {
		_, err := s.Insert(ctx, l)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), DefaultExportFileName)
	n, err := s.ExportCSV(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 15, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 16) // header + 15 rows
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "Fatima Mohammed", records[1][1])
	assert.Equal(t, "95", records[1][15])
	assert.Equal(t, "Hot", records[1][16])
}
