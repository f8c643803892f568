package engine

// ============================================================================
// ENGINE TYPES — typed birth records, filter specs, aggregate results
// ============================================================================
// Raw CSV cells are untyped text. Normalization converts each cell once, up
// front, into a typed optional value (Code or Measure); everything downstream
// works on this schema and never touches raw input again.
// ============================================================================

// Code is an integer category value that may be missing. Missing covers both
// an absent cell and a cell that failed numeric parsing.
type Code struct {
	Value int  `json:"value"`
	Valid bool `json:"valid"`
}

// Measure is a float measurement that may be missing.
type Measure struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// CohabitationUnknown is the reserved sentinel for the parental cohabitation
// duration field. Rows carrying it are excluded from every aggregate over that
// field, independent of any user filter.
const CohabitationUnknown = 999

// Record is one birth event in canonical typed form. Label fields are derived
// from the code fields by Decorate and are never set independently.
type Record struct {
	Year  Code `json:"year"`
	Month Code `json:"month"`

	Region              Code `json:"region"`
	Gender              Code `json:"gender"`
	MultiplicityType    Code `json:"multiplicity_type"`
	MultiplicityOrder   Code `json:"multiplicity_order"`
	Marital             Code `json:"marital"`
	MotherTotalChildren Code `json:"mother_total_children"`
	FatherAge           Code `json:"father_age"`
	MotherAge           Code `json:"mother_age"`
	FatherNationality   Code `json:"father_nationality"`
	MotherNationality   Code `json:"mother_nationality"`

	Weight            Measure `json:"weight"`
	GestationWeeks    Measure `json:"gestation_weeks"`
	CohabitationYears Measure `json:"cohabitation_years"`

	// Decoded labels. Empty string means the code is missing or unmapped.
	RegionName               string `json:"region_name"`
	GenderLabel              string `json:"gender_label"`
	MultiplicityTypeLabel    string `json:"multiplicity_type_label"`
	MultiplicityOrderLabel   string `json:"multiplicity_order_label"`
	MaritalLabel             string `json:"marital_label"`
	MotherTotalChildrenLabel string `json:"mother_total_children_label"`
	FatherAgeLabel           string `json:"father_age_label"`
	MotherAgeLabel           string `json:"mother_age_label"`
	FatherNationalityLabel   string `json:"father_nationality_label"`
	MotherNationalityLabel   string `json:"mother_nationality_label"`
}

// ============================================================================
// FILTER SPEC
// ============================================================================

// WeightRange is an inclusive birth weight range in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the full set of user-selected predicates, AND-combined.
//
// Multi-select fields distinguish "not provided" from "explicitly empty":
// a nil slice applies no filter on that dimension, while a non-nil empty
// slice is an empty selection and excludes every row. The presentation layer
// owns the spec and passes it whole on each recomputation; the engine keeps
// no filter state between calls.
type FilterSpec struct {
	// Year filters on exact year. Nil means all years.
	Year *int `json:"year,omitempty"`

	// Regions and Genders select by decoded label; Months by month number.
	Regions []string `json:"regions,omitempty"`
	Genders []string `json:"genders,omitempty"`
	Months  []int    `json:"months,omitempty"`

	// MultiplicityType and MaritalType are exact-match on decoded label.
	// Empty string means all.
	MultiplicityType string `json:"multiplicity_type,omitempty"`
	MaritalType      string `json:"marital_type,omitempty"`

	// Weight keeps only rows whose birth weight lies in the inclusive range.
	// Rows with missing weight are excluded while the range is set.
	Weight *WeightRange `json:"weight,omitempty"`

	// DropMissingCore drops rows missing any of year, region, gender, month
	// or weight.
	DropMissingCore bool `json:"drop_missing_core,omitempty"`
}

// ============================================================================
// AGGREGATE RESULTS
// ============================================================================

// Group is one bucket of a grouped count or grouped mean.
type Group struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"`
}

// PairGroup is one cell of a two-dimensional grouped count. Only combinations
// present in the data are emitted.
type PairGroup struct {
	KeyA  string `json:"key_a"`
	KeyB  string `json:"key_b"`
	Count int    `json:"count"`
}

// Summary is the complete set of aggregates the dashboard derives from one
// filtered view. It is recomputed wholesale on every filter change and never
// patched in place.
type Summary struct {
	TotalBirths       int     `json:"total_births"`
	AvgWeight         Measure `json:"avg_weight"`
	MultipleRatio     float64 `json:"multiple_ratio"`
	OutOfWedlockRatio float64 `json:"out_of_wedlock_ratio"`

	GenderCounts       []Group     `json:"gender_counts"`
	MultiplicityCounts []Group     `json:"multiplicity_counts"`
	RegionCounts       []Group     `json:"region_counts"`
	MonthlyCounts      []Group     `json:"monthly_counts"`
	AgeHeatmap         []PairGroup `json:"age_heatmap"`
	TopRegions         []Group     `json:"top_regions"`
	RegionAvgWeight    []Group     `json:"region_avg_weight"`

	AvgGestationWeeks    Measure `json:"avg_gestation_weeks"`
	AvgCohabitationYears Measure `json:"avg_cohabitation_years"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a render-ready tabular result. Consumers draw it however they
// like; the engine only decides content and order.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column describes one table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left" or "right"
}
