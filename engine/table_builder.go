package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Summary → render-ready tables
// ============================================================================
// Turns aggregate results into generic column/row tables. How the tables are
// drawn (charts, colors, layout) stays with the consumer.
// ============================================================================

// BuildGroupTable renders a grouped count or mean as a two-column table.
// When every group's Value is zero the second column carries counts;
// otherwise it carries the value formatted to two decimals.
func BuildGroupTable(title, keyLabel, valueLabel string, groups []Group) *TableData {
	t := &TableData{
		Title: title,
		Columns: []Column{
			{Key: "key", Label: keyLabel, Align: "left"},
			{Key: "value", Label: valueLabel, Align: "right"},
		},
		Rows: make([][]string, 0, len(groups)),
	}
	for _, g := range groups {
		val := FormatInt(g.Count)
		if g.Value != 0 {
			val = fmt.Sprintf("%.2f", g.Value)
		}
		t.Rows = append(t.Rows, []string{g.Key, val})
	}
	return t
}

// BuildPairTable renders a two-dimensional grouped count, one row per
// present cell.
func BuildPairTable(title, labelA, labelB string, cells []PairGroup) *TableData {
	t := &TableData{
		Title: title,
		Columns: []Column{
			{Key: "key_a", Label: labelA, Align: "left"},
			{Key: "key_b", Label: labelB, Align: "left"},
			{Key: "count", Label: "출생아수", Align: "right"},
		},
		Rows: make([][]string, 0, len(cells)),
	}
	for _, c := range cells {
		t.Rows = append(t.Rows, []string{c.KeyA, c.KeyB, FormatInt(c.Count)})
	}
	return t
}

// BuildSummaryTables lays the whole summary out as named tables, in the
// order the dashboard presents them.
func BuildSummaryTables(s *Summary) []TableData {
	kpi := &TableData{
		Title: "출생 통계 요약",
		Columns: []Column{
			{Key: "metric", Label: "지표", Align: "left"},
			{Key: "value", Label: "값", Align: "right"},
		},
		Rows: [][]string{
			{"총 출생아 수", FormatInt(s.TotalBirths)},
			{"평균 출생 체중(kg)", formatMeasure(s.AvgWeight, "%.2f")},
			{"다태아 비율(%)", fmt.Sprintf("%.1f", s.MultipleRatio)},
			{"혼인 외 출생 비율(%)", fmt.Sprintf("%.1f", s.OutOfWedlockRatio)},
			{"평균 임신 주수", formatMeasure(s.AvgGestationWeeks, "%.1f")},
			{"평균 부모 동거기간(년)", formatMeasure(s.AvgCohabitationYears, "%.1f")},
		},
	}

	return []TableData{
		*kpi,
		*BuildGroupTable("성별 분포", "성별", "출생아수", s.GenderCounts),
		*BuildGroupTable("다태아 분포", "구분", "출생아수", s.MultiplicityCounts),
		*BuildGroupTable("시도별 출생아 수", "시도명", "출생아수", s.RegionCounts),
		*BuildGroupTable("월별 출생아 수 추이", "출생월", "출생아수", s.MonthlyCounts),
		*BuildPairTable("부모 연령대별 출생 분포", "부연령", "모연령", s.AgeHeatmap),
		*BuildGroupTable("출생아 수 상위 지역", "시도명", "출생아수", s.TopRegions),
		*BuildGroupTable("지역별 평균 출생 체중(kg)", "시도명", "평균 체중", s.RegionAvgWeight),
	}
}

// formatMeasure renders a possibly-missing mean. "데이터 없음" mirrors the
// dashboard's empty-metric caption.
func formatMeasure(m Measure, verb string) string {
	if !m.Valid {
		return "데이터 없음"
	}
	return fmt.Sprintf(verb, m.Value)
}
