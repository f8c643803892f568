package engine

import "github.com/natal-org/natal/codes"

// ============================================================================
// DECODER — category codes → display labels
// ============================================================================
// Label fields are pure functions of the code fields. Decoding is total:
// missing or unmapped codes produce an empty label, never a fault, and for a
// fixed (dictionary, code) pair the result never changes.
// ============================================================================

// DecodeLabel returns the label for a possibly-missing code. Empty string
// stands for "no label": the code is missing or outside the dictionary.
func DecodeLabel(d *codes.Dict, c Code) string {
	if !c.Valid {
		return ""
	}
	label, _ := d.Label(c.Value)
	return label
}

// Decorate fills every derived label field on r from its code fields.
func (r *Record) Decorate() {
	r.RegionName = DecodeLabel(codes.Region, r.Region)
	r.GenderLabel = DecodeLabel(codes.Gender, r.Gender)
	r.MultiplicityTypeLabel = DecodeLabel(codes.MultiplicityType, r.MultiplicityType)
	r.MultiplicityOrderLabel = DecodeLabel(codes.MultiplicityOrder, r.MultiplicityOrder)
	r.MaritalLabel = DecodeLabel(codes.Marital, r.Marital)
	r.MotherTotalChildrenLabel = DecodeLabel(codes.MotherTotalChildren, r.MotherTotalChildren)
	r.FatherAgeLabel = DecodeLabel(codes.AgeBracket, r.FatherAge)
	r.MotherAgeLabel = DecodeLabel(codes.AgeBracket, r.MotherAge)
	r.FatherNationalityLabel = DecodeLabel(codes.Nationality, r.FatherNationality)
	r.MotherNationalityLabel = DecodeLabel(codes.Nationality, r.MotherNationality)
}

// Decorate fills the derived label fields on every record in place. Called
// once after normalization, before the dataset is shared.
func Decorate(records []Record) {
	for i := range records {
		records[i].Decorate()
	}
}
