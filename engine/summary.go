package engine

import (
	"sort"
	"strconv"

	"github.com/natal-org/natal/codes"
)

// ============================================================================
// SUMMARY — every aggregate the dashboard derives from one filtered view
// ============================================================================
// BuildSummary recomputes the whole set from scratch. Nothing is cached or
// patched: when the filter spec changes, the caller filters again and builds
// a fresh Summary, and the previous one becomes garbage.
// ============================================================================

// Accessors shared by summary aggregates and tests.
func weightOf(r *Record) Measure      { return r.Weight }
func gestationOf(r *Record) Measure   { return r.GestationWeeks }
func regionOf(r *Record) string       { return r.RegionName }
func genderOf(r *Record) string       { return r.GenderLabel }
func multiplicityOf(r *Record) string { return r.MultiplicityTypeLabel }
func fatherAgeOf(r *Record) string    { return r.FatherAgeLabel }
func motherAgeOf(r *Record) string    { return r.MotherAgeLabel }

// monthKey renders the birth month as a group key; missing months group
// under the empty key and are dropped.
func monthKey(r *Record) string {
	if !r.Month.Valid {
		return ""
	}
	return strconv.Itoa(r.Month.Value)
}

// isMultipleBirth treats a missing multiplicity type as a singleton rather
// than dropping the row, so the ratio denominator stays the full view.
func isMultipleBirth(r *Record) bool {
	code := 1
	if r.MultiplicityType.Valid {
		code = r.MultiplicityType.Value
	}
	return code > 1
}

// isOutOfWedlock matches marital code 2. Missing codes count as false but
// stay in the denominator.
func isOutOfWedlock(r *Record) bool {
	return r.Marital.Valid && r.Marital.Value == 2
}

// BuildSummary computes the full aggregate set over a (typically filtered)
// view. An empty view produces zero counts, zero ratios and invalid means.
func BuildSummary(v View, opts ...Option) *Summary {
	cfg := applyOptions(opts)

	return &Summary{
		TotalBirths:       Count(v),
		AvgWeight:         Mean(v, weightOf),
		MultipleRatio:     Ratio(v, isMultipleBirth),
		OutOfWedlockRatio: Ratio(v, isOutOfWedlock),

		GenderCounts:       CountBy(v, genderOf, SortCountDesc, 0),
		MultiplicityCounts: CountBy(v, multiplicityOf, SortCountDesc, 0),
		RegionCounts:       CountBy(v, regionOf, SortCountDesc, 0),
		MonthlyCounts:      CountBy(v, monthKey, SortKeyAsc, 0),
		AgeHeatmap:         ageHeatmap(v),
		TopRegions:         CountBy(v, regionOf, SortCountDesc, cfg.TopRegionLimit),
		RegionAvgWeight:    MeanBy(v, regionOf, weightOf, SortValueDesc),

		AvgGestationWeeks:    Mean(v, gestationOf),
		AvgCohabitationYears: CohabitationMean(v),
	}
}

// ageHeatmap counts births per (father age bracket, mother age bracket) cell
// and orders cells by the brackets' natural order — youngest first, unknown
// last — so a renderer can lay axes out directly.
func ageHeatmap(v View) []PairGroup {
	cells := CountByPair(v, fatherAgeOf, motherAgeOf)
	sort.SliceStable(cells, func(i, j int) bool {
		ai, aj := codes.AgeBracket.LabelIndex(cells[i].KeyA), codes.AgeBracket.LabelIndex(cells[j].KeyA)
		if ai != aj {
			return ai < aj
		}
		return codes.AgeBracket.LabelIndex(cells[i].KeyB) < codes.AgeBracket.LabelIndex(cells[j].KeyB)
	})
	return cells
}
