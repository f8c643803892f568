package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/natal-org/natal/engine"
)

// writeOutput sends data to stdout or, when out is set, to a file.
func writeOutput(out string, data []byte) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

// tablesCSV renders tables as CSV sections: a title comment line, a header
// row, data rows, then a blank line between tables. Ready for a spreadsheet
// import.
func tablesCSV(tables []engine.TableData) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i, t := range tables {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "# %s\n", t.Title)
		header := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			header[j] = c.Label
		}
		_ = w.Write(header)
		for _, row := range t.Rows {
			_ = w.Write(row)
		}
		w.Flush()
	}
	return buf.Bytes()
}

// tablesText renders tables as plain aligned text for terminal reading.
func tablesText(tables []engine.TableData) []byte {
	var buf bytes.Buffer
	for i, t := range tables {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s\n", t.Title)

		widths := make([]int, len(t.Columns))
		for j, c := range t.Columns {
			widths[j] = len([]rune(c.Label))
		}
		for _, row := range t.Rows {
			for j, cell := range row {
				if n := len([]rune(cell)); j < len(widths) && n > widths[j] {
					widths[j] = n
				}
			}
		}

		writeRow := func(cells []string) {
			for j, cell := range cells {
				if j > 0 {
					buf.WriteString("  ")
				}
				pad := widths[j] - len([]rune(cell))
				if t.Columns[j].Align == "right" {
					buf.WriteString(spaces(pad))
					buf.WriteString(cell)
				} else {
					buf.WriteString(cell)
					buf.WriteString(spaces(pad))
				}
			}
			buf.WriteByte('\n')
		}

		header := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			header[j] = c.Label
		}
		writeRow(header)
		for _, row := range t.Rows {
			writeRow(row)
		}
	}
	return buf.Bytes()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
