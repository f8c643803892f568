package engine

// ============================================================================
// FILTER ENGINE — conjunction of independent predicates
// ============================================================================
// Single pass: each row is checked against every active predicate and dropped
// at the first failure. The result is a sub-view (index list into the parent)
// in original row order — no copy, no reordering.
// ============================================================================

// Apply returns the view of rows passing every predicate in spec.
//
// Beyond the user-selected predicates, one rule is unconditional: rows whose
// parental cohabitation duration equals the unknown sentinel (999) are
// excluded whenever the field is present. Rows where the field is missing
// pass; only the recorded-as-unknown sentinel is dropped.
func Apply(view View, spec FilterSpec) View {
	regions := labelSet(spec.Regions)
	genders := labelSet(spec.Genders)
	months := monthSet(spec.Months)

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if matches(view.At(i), spec, regions, genders, months) {
			indices = append(indices, i)
		}
	}
	return view.sub(indices)
}

// matches evaluates the conjunction for one row, short-circuiting on the
// first failing predicate. A nil set means the dimension has no filter; an
// empty non-nil set is an explicit empty selection and matches nothing.
func matches(r *Record, spec FilterSpec, regions, genders map[string]bool, months map[int]bool) bool {
	if r.CohabitationYears.Valid && r.CohabitationYears.Value == CohabitationUnknown {
		return false
	}
	if spec.Year != nil {
		if !r.Year.Valid || r.Year.Value != *spec.Year {
			return false
		}
	}
	if regions != nil && !regions[r.RegionName] {
		return false
	}
	if genders != nil && !genders[r.GenderLabel] {
		return false
	}
	if months != nil {
		if !r.Month.Valid || !months[r.Month.Value] {
			return false
		}
	}
	if spec.MultiplicityType != "" && r.MultiplicityTypeLabel != spec.MultiplicityType {
		return false
	}
	if spec.MaritalType != "" && r.MaritalLabel != spec.MaritalType {
		return false
	}
	if spec.Weight != nil {
		if !r.Weight.Valid {
			return false
		}
		if r.Weight.Value < spec.Weight.Min || r.Weight.Value > spec.Weight.Max {
			return false
		}
	}
	if spec.DropMissingCore {
		if !r.Year.Valid || !r.Region.Valid || !r.Gender.Valid || !r.Month.Valid || !r.Weight.Valid {
			return false
		}
	}
	return true
}

// labelSet builds a membership set, preserving the nil/empty distinction: a
// nil slice yields a nil set (no filter), an empty slice a non-nil empty set.
func labelSet(labels []string) map[string]bool {
	if labels == nil {
		return nil
	}
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}

func monthSet(months []int) map[int]bool {
	if months == nil {
		return nil
	}
	set := make(map[int]bool, len(months))
	for _, m := range months {
		set[m] = true
	}
	return set
}
