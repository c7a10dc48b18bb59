package ledger

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type csvRecords struct {
	f *os.File
	r *csv.Reader
}

// openCSV opens a UTF-8 CSV, dropping a leading byte-order mark when present.
func openCSV(path string, delim rune) (*csvRecords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	r := csv.NewReader(transform.NewReader(f, dec))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return &csvRecords{f: f, r: r}, nil
}

func (c *csvRecords) Next() ([]string, error) {
	return c.r.Read()
}

func (c *csvRecords) Close() error {
	return c.f.Close()
}
