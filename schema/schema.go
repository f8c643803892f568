// Package schema declares the column contract of the birth-record dataset
// and binds CSV headers to it.
//
// The source export names its columns in Korean and does not guarantee their
// order. Detect matches headers by exact name, distinguishes required columns
// (whose absence is a load failure) from optional ones (whose fields are then
// simply missing on every record), and hands back a Layout of column indices.
package schema

import (
	"fmt"
	"strings"
)

// Column header names as they appear in the source CSV.
const (
	ColYear                = "연도"
	ColMonth               = "출생월"
	ColRegion              = "출생자주소지_행정구역시도코드"
	ColGender              = "성별코드"
	ColWeight              = "출생아체중"
	ColMultiplicityType    = "다태아분류코드"
	ColMultiplicityOrder   = "다태아출산순위코드"
	ColMarital             = "결혼중외의자녀여부코드"
	ColMotherTotalChildren = "모총출생아수코드"
	ColFatherAge           = "부연령_5세단위코드"
	ColMotherAge           = "모연령_5세단위코드"
	ColFatherNationality   = "부_국적구분코드"
	ColMotherNationality   = "모_국적구분코드"
	ColGestationWeeks      = "임신주수"
	ColCohabitation        = "부모동거기간"
)

// Kind declares a column's semantic type.
type Kind int

const (
	// KindCode columns normalize to integer category codes.
	KindCode Kind = iota
	// KindMeasure columns normalize to float measurements.
	KindMeasure
)

// Column describes one dataset column.
type Column struct {
	Name     string
	Kind     Kind
	Required bool
}

// Columns is the full dataset contract.
var Columns = []Column{
	{ColYear, KindCode, true},
	{ColMonth, KindCode, true},
	{ColRegion, KindCode, true},
	{ColGender, KindCode, true},
	{ColWeight, KindMeasure, true},
	{ColMultiplicityType, KindCode, true},
	{ColMultiplicityOrder, KindCode, true},
	{ColMarital, KindCode, true},
	{ColMotherTotalChildren, KindCode, true},
	{ColFatherAge, KindCode, true},
	{ColMotherAge, KindCode, true},
	{ColFatherNationality, KindCode, true},
	{ColMotherNationality, KindCode, true},
	{ColGestationWeeks, KindMeasure, false},
	{ColCohabitation, KindMeasure, false},
}

// Layout maps column names to their index in a concrete CSV header.
type Layout struct {
	indices map[string]int
}

// Index returns the header position of a named column, or -1 when the
// column is absent from this dataset.
func (l Layout) Index(name string) int {
	if idx, ok := l.indices[name]; ok {
		return idx
	}
	return -1
}

// Has reports whether a named column exists in this dataset.
func (l Layout) Has(name string) bool {
	_, ok := l.indices[name]
	return ok
}

// Names returns the contract columns present in this dataset, in contract
// order.
func (l Layout) Names() []string {
	var names []string
	for _, c := range Columns {
		if l.Has(c.Name) {
			names = append(names, c.Name)
		}
	}
	return names
}

// Detect binds a CSV header row to the dataset contract. Header cells are
// trimmed and stripped of a UTF-8 BOM before matching. All required columns
// must be present or Detect fails — that failure belongs to the load
// boundary and is the only error the pipeline ever surfaces.
func Detect(headers []string) (Layout, error) {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			continue
		}
		if _, dup := byName[h]; !dup {
			byName[h] = i
		}
	}

	l := Layout{indices: make(map[string]int, len(Columns))}
	var missing []string
	for _, c := range Columns {
		idx, ok := byName[c.Name]
		if !ok {
			if c.Required {
				missing = append(missing, c.Name)
			}
			continue
		}
		l.indices[c.Name] = idx
	}
	if len(missing) > 0 {
		return Layout{}, fmt.Errorf("schema: missing required columns: %s", strings.Join(missing, ", "))
	}
	return l, nil
}
