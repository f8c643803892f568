package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/natal-org/natal/engine"
	"github.com/natal-org/natal/schema"
)

// ============================================================================
// CSV LOADER — bytes → immutable record table
// ============================================================================
// Statistics-office exports come in whatever encoding the publishing tool
// felt like: usually CP949/EUC-KR, sometimes UTF-8 with or without BOM. The
// loader tries a prioritized list and takes the first decoding that yields
// clean text. Row-level problems degrade per cell; only an unreadable file
// or a header missing required columns is an error.
// ============================================================================

// Dataset is the fully materialized record table handed to the pipeline.
// It is loaded once and shared read-only; filtered views index into it.
type Dataset struct {
	Records  []engine.Record
	Layout   schema.Layout
	Encoding string // name of the encoding that decoded the file
}

// View returns a full view over the dataset.
func (d *Dataset) View() engine.View {
	return engine.NewView(d.Records)
}

// utf8BOM is the byte-order mark some exports prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textDecoder is one candidate in the encoding fallback chain. ok is false
// when the bytes do not decode cleanly under this encoding.
type textDecoder struct {
	name   string
	decode func([]byte) (text string, ok bool)
}

// decoders in priority order. UTF-8 validity is checked before EUC-KR:
// hangul byte pairs under EUC-KR are almost never valid UTF-8, while valid
// UTF-8 text often survives an EUC-KR decode as clean-looking mojibake, so
// trying UTF-8 first is the discriminating order. The EUC-KR decoder
// substitutes U+FFFD instead of failing; a replacement rune in its output
// means "wrong encoding, try the next one". ISO-8859-1 is total and
// terminates the chain.
var decoders = []textDecoder{
	{"utf-8-sig", func(data []byte) (string, bool) {
		if !bytes.HasPrefix(data, utf8BOM) {
			return "", false
		}
		rest := data[len(utf8BOM):]
		if !utf8.Valid(rest) {
			return "", false
		}
		return string(rest), true
	}},
	{"utf-8", func(data []byte) (string, bool) {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(bytes.TrimPrefix(data, utf8BOM)), true
	}},
	{"cp949", func(data []byte) (string, bool) {
		out, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}},
	{"iso-8859-1", func(data []byte) (string, bool) {
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return "", false
		}
		return string(out), true
	}},
}

// DecodeText decodes raw file bytes into text, trying encodings in priority
// order. It returns the text and the name of the encoding that succeeded.
func DecodeText(data []byte) (string, string, error) {
	for _, d := range decoders {
		if text, ok := d.decode(data); ok {
			return text, d.name, nil
		}
	}
	return "", "", fmt.Errorf("helpers: data not decodable under any supported encoding")
}

// Load decodes, parses and normalizes a CSV export into a Dataset.
func Load(data []byte) (*Dataset, error) {
	text, encName, err := DecodeText(data)
	if err != nil {
		return nil, err
	}

	headers, rows, err := readRows(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	layout, err := schema.Detect(headers)
	if err != nil {
		return nil, err
	}

	records := make([]engine.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, buildRecord(layout, row))
	}
	engine.Decorate(records)

	return &Dataset{Records: records, Layout: layout, Encoding: encName}, nil
}

// LoadFile reads and loads a CSV export from disk.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("helpers: read %s: %w", path, err)
	}
	ds, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("helpers: load %s: %w", path, err)
	}
	return ds, nil
}

// readRows parses CSV text tolerantly: variable field counts are allowed,
// malformed lines are skipped, and every data row is padded or truncated to
// the header width so column indexes stay stable.
func readRows(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var headers []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("helpers: no header row found")
		}
		if err != nil || len(rec) == 0 {
			continue
		}
		headers = rec
		break
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(rec) == 0 {
			continue
		}
		rows = append(rows, fitRowToWidth(rec, len(headers)))
	}
	return headers, rows, nil
}

// fitRowToWidth truncates or pads a record to exactly n fields.
func fitRowToWidth(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	if len(row) > n {
		return row[:n]
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// buildRecord normalizes one raw row into a typed Record. Cells from absent
// optional columns come back empty and normalize to missing.
func buildRecord(l schema.Layout, row []string) engine.Record {
	cell := func(name string) string {
		idx := l.Index(name)
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	return engine.Record{
		Year:  engine.ParseCode(cell(schema.ColYear)),
		Month: engine.ParseCode(cell(schema.ColMonth)),

		Region:              engine.ParseCode(cell(schema.ColRegion)),
		Gender:              engine.ParseCode(cell(schema.ColGender)),
		MultiplicityType:    engine.ParseCode(cell(schema.ColMultiplicityType)),
		MultiplicityOrder:   engine.ParseCode(cell(schema.ColMultiplicityOrder)),
		Marital:             engine.ParseCode(cell(schema.ColMarital)),
		MotherTotalChildren: engine.ParseCode(cell(schema.ColMotherTotalChildren)),
		FatherAge:           engine.ParseCode(cell(schema.ColFatherAge)),
		MotherAge:           engine.ParseCode(cell(schema.ColMotherAge)),
		FatherNationality:   engine.ParseCode(cell(schema.ColFatherNationality)),
		MotherNationality:   engine.ParseCode(cell(schema.ColMotherNationality)),

		Weight:            engine.ParseMeasure(cell(schema.ColWeight)),
		GestationWeeks:    engine.ParseMeasure(cell(schema.ColGestationWeeks)),
		CohabitationYears: engine.ParseMeasure(cell(schema.ColCohabitation)),
	}
}
