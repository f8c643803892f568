// Package natal implements the decode/filter/aggregate pipeline behind a
// birth-statistics dashboard.
//
// Usage:
//
//	ds, err := helpers.LoadFile("chd_2023.csv")
//	spec, err := filterspec.ParseFile("filter.yaml")
//
//	view := engine.Apply(ds.View(), spec)
//	summary := engine.BuildSummary(view)
//
// Records are normalized once at load time into a typed schema (integer
// category codes, float measurements, explicit missing markers) and
// decorated with display labels from the code dictionaries. Filtering and
// aggregation are pure functions over immutable views: the presentation
// layer owns the current filter spec, passes it whole on every change, and
// replaces its derived view and summary wholesale with the result.
package natal
