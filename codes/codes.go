package codes

import "fmt"

// ============================================================================
// CODE DICTIONARIES — integer category codes ↔ display labels
// ============================================================================
// Birth records encode every categorical field as a small integer. Each field
// has a fixed dictionary here, plus a reserved "unknown" code (9, 99 or 999
// depending on field) that carries its own label. Codes absent from a
// dictionary decode to nothing; lookups never fail.
// ============================================================================

// Entry is a single code → label pair. Declaration order is the field's
// natural display order (age brackets ascend, unknown last).
type Entry struct {
	Code  int
	Label string
}

// Dict is a bidirectional, order-preserving code/label mapping for one
// categorical field. Both directions are built once at construction; labels
// must be unique within a field.
type Dict struct {
	name    string
	entries []Entry
	byCode  map[int]string
	byLabel map[string]int
}

// MustDict builds a Dict and panics on duplicate codes or labels. Dictionary
// tables are compile-time data, so a collision is a programming error, not a
// runtime condition.
func MustDict(name string, entries []Entry) *Dict {
	d := &Dict{
		name:    name,
		entries: entries,
		byCode:  make(map[int]string, len(entries)),
		byLabel: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := d.byCode[e.Code]; dup {
			panic(fmt.Sprintf("codes: %s: duplicate code %d", name, e.Code))
		}
		if _, dup := d.byLabel[e.Label]; dup {
			panic(fmt.Sprintf("codes: %s: duplicate label %q", name, e.Label))
		}
		d.byCode[e.Code] = e.Label
		d.byLabel[e.Label] = e.Code
	}
	return d
}

// Name returns the field name this dictionary describes.
func (d *Dict) Name() string { return d.name }

// Label returns the display label for code. ok is false for codes outside the
// dictionary, including negatives — callers treat that as a missing label.
func (d *Dict) Label(code int) (string, bool) {
	label, ok := d.byCode[code]
	return label, ok
}

// Code returns the integer code for a display label.
func (d *Dict) Code(label string) (int, bool) {
	code, ok := d.byLabel[label]
	return code, ok
}

// Has reports whether code is in the dictionary.
func (d *Dict) Has(code int) bool {
	_, ok := d.byCode[code]
	return ok
}

// Labels returns all labels in declaration order.
func (d *Dict) Labels() []string {
	labels := make([]string, len(d.entries))
	for i, e := range d.entries {
		labels[i] = e.Label
	}
	return labels
}

// Codes returns all codes in declaration order.
func (d *Dict) Codes() []int {
	out := make([]int, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Code
	}
	return out
}

// LabelIndex returns the declaration-order position of a label, or len(dict)
// when the label is unknown. Used to order chart axes by natural category
// order rather than alphabetically.
func (d *Dict) LabelIndex(label string) int {
	for i, e := range d.entries {
		if e.Label == label {
			return i
		}
	}
	return len(d.entries)
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.entries) }

// ============================================================================
// FIELD DICTIONARIES
// ============================================================================

// Region maps two-digit administrative division codes to 시도 names.
var Region = MustDict("region", []Entry{
	{11, "서울특별시"}, {21, "부산광역시"}, {22, "대구광역시"}, {23, "인천광역시"},
	{24, "광주광역시"}, {25, "대전광역시"}, {26, "울산광역시"}, {29, "세종특별자치시"},
	{31, "경기도"}, {32, "강원도"}, {33, "충청북도"}, {34, "충청남도"},
	{35, "전라북도"}, {36, "전라남도"}, {37, "경상북도"}, {38, "경상남도"},
	{39, "제주특별자치도"},
})

// AgeBracket maps five-year parental age bracket codes. 99 is "unknown".
var AgeBracket = MustDict("age_bracket", []Entry{
	{1, "0~14세"}, {2, "15~19세"}, {3, "20~24세"}, {4, "25~29세"}, {5, "30~34세"},
	{6, "35~39세"}, {7, "40~44세"}, {8, "45~49세"}, {9, "50세 이상"}, {99, "미상"},
})

// MultiplicityOrder maps birth order within a multiple delivery.
var MultiplicityOrder = MustDict("multiplicity_order", []Entry{
	{1, "첫째"}, {2, "둘째"}, {3, "셋째"}, {4, "넷째"}, {9, "미상"},
})

// MultiplicityType maps single/twin/triplet-or-more classification.
var MultiplicityType = MustDict("multiplicity_type", []Entry{
	{1, "단태아"}, {2, "쌍태아"}, {3, "삼태아이상"}, {9, "미상"},
})

// MotherTotalChildren maps the mother's total live birth count.
var MotherTotalChildren = MustDict("mother_total_children", []Entry{
	{1, "1명"}, {2, "2명"}, {3, "3명"}, {4, "4명"}, {5, "5명"},
	{6, "6명"}, {7, "7명"}, {8, "8명 이상"}, {99, "미상"},
})

// Nationality maps parental nationality classification.
var Nationality = MustDict("nationality", []Entry{
	{1, "출생한국인"}, {2, "귀화한국인"}, {3, "외국"}, {9, "미상"},
})

// Gender maps the newborn's gender code. No reserved unknown code exists for
// this field.
var Gender = MustDict("gender", []Entry{
	{1, "남"}, {2, "여"},
})

// Marital maps whether the birth occurred within marriage.
var Marital = MustDict("marital", []Entry{
	{1, "혼인 중 출생"}, {2, "혼인 외 출생"},
})
