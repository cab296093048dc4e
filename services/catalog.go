package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CatalogRow is one record of a CSV catalog, keyed by header column name.
// Values are stored trimmed.
type CatalogRow map[string]string

// Get returns the trimmed cell for a column, empty when the column is absent.
func (r CatalogRow) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Float returns the numeric value of a column, or the fallback when the cell
// is empty or not a finite number.
func (r CatalogRow) Float(column string, fallback float64) float64 {
	return ParseNumber(r[column], fallback)
}

// RowFilter is a column equality predicate used to narrow catalog rows, e.g.
// machines for one job type.
type RowFilter struct {
	Column string
	Value  string
}

// Matches reports whether the row satisfies every filter. Comparison is on
// trimmed values; a filter with an empty value always matches.
func (r CatalogRow) Matches(filters ...RowFilter) bool {
	for _, f := range filters {
		want := strings.TrimSpace(f.Value)
		if want == "" {
			continue
		}
		if r.Get(f.Column) != want {
			return false
		}
	}
	return true
}

// FilterRows returns the rows satisfying every filter.
func FilterRows(rows []CatalogRow, filters ...RowFilter) []CatalogRow {
	out := make([]CatalogRow, 0, len(rows))
	for _, r := range rows {
		if r.Matches(filters...) {
			out = append(out, r)
		}
	}
	return out
}

// FindRow returns the first row whose column equals the given value.
func FindRow(rows []CatalogRow, column, value string) (CatalogRow, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}
	for _, r := range rows {
		if r.Get(column) == value {
			return r, true
		}
	}
	return nil, false
}

// Catalogs holds the reference data the calculators and field options read:
// the materials and machines price lists. Catalogs are loaded once at startup
// and read concurrently by request handlers afterwards.
type Catalogs struct {
	mu     sync.RWMutex
	rows   map[string][]CatalogRow
	loaded bool
}

// NewCatalogs returns an empty, not-yet-loaded catalog set.
func NewCatalogs() *Catalogs {
	return &Catalogs{rows: map[string][]CatalogRow{}}
}

// Loaded reports whether LoadAll completed without error at least once.
func (c *Catalogs) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Get returns the rows of a catalog by id ("materials", "machines"). Unknown
// ids yield an empty slice so callers degrade to empty option lists.
func (c *Catalogs) Get(catalogID string) []CatalogRow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rows[catalogID]
}

// Put replaces one catalog's rows and marks the set loaded.
func (c *Catalogs) Put(catalogID string, rows []CatalogRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[catalogID] = rows
	c.loaded = true
}

// LoadAll reads materials.csv and machines.csv from the data directory. A
// missing or unreadable file logs a warning and leaves that catalog empty;
// the application keeps running with whatever loaded.
func (c *Catalogs) LoadAll(dir string) {
	materials := loadCatalogFile(filepath.Join(dir, "materials.csv"))
	machines := loadCatalogFile(filepath.Join(dir, "machines.csv"))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows["materials"] = materials
	c.rows["machines"] = machines
	c.loaded = true
}

func loadCatalogFile(path string) []CatalogRow {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("catalog: failed to open %s: %v", path, err)
		return []CatalogRow{}
	}
	defer f.Close()

	rows, err := ParseCatalogCSV(f)
	if err != nil {
		log.Printf("catalog: failed to parse %s: %v", path, err)
		return []CatalogRow{}
	}
	return rows
}

// ParseCatalogCSV parses a header-first CSV stream into catalog rows. Short
// records leave the trailing columns empty.
func ParseCatalogCSV(r io.Reader) ([]CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []CatalogRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []CatalogRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		row := CatalogRow{}
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
