// Package csvutil renders tabular report data as CSV text. It uses
// encoding/csv so embedded commas, quotes and newlines are escaped
// correctly instead of corrupting the row layout.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// Table is a fixed header plus one row per record
type Table struct {
	Header []string
	Rows   [][]string
}

// Render serializes the table as CSV text
func (t Table) Render() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Header); err != nil {
		return "", err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatAmount renders a monetary amount the way the report tables do
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
