package engine

import (
	"fmt"
	"sort"
	"strconv"
)

// ============================================================================
// AGGREGATORS — counts, means, ratios, grouped variants
// ============================================================================
// Pure functions over a View. Grouping emits only the value combinations
// actually present in the data; rows with a missing label are dropped from
// label-keyed groupings. Every function accepts an empty view and returns
// empty or zero-valued results.
// ============================================================================

// Sort modes for SortGroups.
const (
	SortNone      = "none"       // preserve first-seen order
	SortCountDesc = "count_desc" // rankings
	SortValueDesc = "value_desc" // grouped means
	SortKeyAsc    = "key_asc"    // natural order; numeric keys compare as numbers
)

// Count returns the number of rows in the view.
func Count(v View) int { return v.Len() }

// Mean computes the mean of a measure over rows where it is non-missing.
// Valid is false when no row contributes — the caller renders that as
// "no data", not as zero.
func Mean(v View, measure func(*Record) Measure) Measure {
	var sum float64
	var n int
	for i := 0; i < v.Len(); i++ {
		if m := measure(v.At(i)); m.Valid {
			sum += m.Value
			n++
		}
	}
	if n == 0 {
		return Measure{}
	}
	return Measure{Value: sum / float64(n), Valid: true}
}

// CohabitationMean averages the parental cohabitation duration, re-excluding
// the unknown sentinel. The filter engine already drops sentinel rows, but a
// caller may aggregate an unfiltered view, so the exclusion is repeated here.
func CohabitationMean(v View) Measure {
	var sum float64
	var n int
	for i := 0; i < v.Len(); i++ {
		m := v.At(i).CohabitationYears
		if !m.Valid || m.Value == CohabitationUnknown {
			continue
		}
		sum += m.Value
		n++
	}
	if n == 0 {
		return Measure{}
	}
	return Measure{Value: sum / float64(n), Valid: true}
}

// Ratio returns the percentage of rows satisfying pred, over all rows in the
// view. Empty input yields 0, never a division error.
func Ratio(v View, pred func(*Record) bool) float64 {
	n := v.Len()
	if n == 0 {
		return 0
	}
	var hits int
	for i := 0; i < n; i++ {
		if pred(v.At(i)) {
			hits++
		}
	}
	return float64(hits) / float64(n) * 100
}

// CountBy groups rows by a label and counts each group. Rows whose label is
// empty (missing or unmapped code) are dropped. Groups come back in the
// requested sort order; limit > 0 truncates after sorting.
func CountBy(v View, key func(*Record) string, sortBy string, limit int) []Group {
	counts := make(map[string]int)
	var order []string
	for i := 0; i < v.Len(); i++ {
		k := key(v.At(i))
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{Key: k, Count: counts[k]})
	}
	SortGroups(groups, sortBy)
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// CountByPair groups rows by two labels and counts each present combination.
// Rows missing either label are dropped; absent combinations are not emitted.
func CountByPair(v View, keyA, keyB func(*Record) string) []PairGroup {
	type pair struct{ a, b string }
	counts := make(map[pair]int)
	var order []pair
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		p := pair{keyA(r), keyB(r)}
		if p.a == "" || p.b == "" {
			continue
		}
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	groups := make([]PairGroup, 0, len(order))
	for _, p := range order {
		groups = append(groups, PairGroup{KeyA: p.a, KeyB: p.b, Count: counts[p]})
	}
	return groups
}

// MeanBy groups rows by a label and computes the mean of a measure within
// each group, over non-missing values only. Groups where no row carries the
// measure are omitted.
func MeanBy(v View, key func(*Record) string, measure func(*Record) Measure, sortBy string) []Group {
	type acc struct {
		sum float64
		n   int
	}
	accs := make(map[string]*acc)
	var order []string
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		k := key(r)
		if k == "" {
			continue
		}
		m := measure(r)
		if !m.Valid {
			continue
		}
		a, seen := accs[k]
		if !seen {
			a = &acc{}
			accs[k] = a
			order = append(order, k)
		}
		a.sum += m.Value
		a.n++
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		a := accs[k]
		groups = append(groups, Group{Key: k, Count: a.n, Value: a.sum / float64(a.n)})
	}
	SortGroups(groups, sortBy)
	return groups
}

// SortGroups orders groups in place by the given mode. Count and value sorts
// break ties by key so results stay deterministic.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case SortCountDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Count != groups[j].Count {
				return groups[i].Count > groups[j].Count
			}
			return groups[i].Key < groups[j].Key
		})
	case SortValueDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Value != groups[j].Value {
				return groups[i].Value > groups[j].Value
			}
			return groups[i].Key < groups[j].Key
		})
	case SortKeyAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return keyLess(groups[i].Key, groups[j].Key)
		})
	default:
		// first-seen order
	}
}

// keyLess compares keys numerically when both parse as integers, so month
// keys order "2" before "10". Otherwise it falls back to string order.
func keyLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// FormatInt formats an integer with comma separators, for table output.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
