package engine

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summaryFixture is four births across three regions, exercising missing
// multiplicity, missing marital status, and the cohabitation sentinel.
func summaryFixture() View {
	r1 := birth(11, 1, 1, 2.5)
	r1.FatherAge = Code{Value: 5, Valid: true}
	r1.MotherAge = Code{Value: 5, Valid: true}
	r1.CohabitationYears = Measure{Value: 5, Valid: true}
	r1.GestationWeeks = Measure{Value: 38, Valid: true}
	r1.Decorate()

	r2 := birth(11, 2, 1, 3.5)
	r2.MultiplicityType = Code{Value: 2, Valid: true}
	r2.Marital = Code{Value: 2, Valid: true}
	r2.FatherAge = Code{Value: 5, Valid: true}
	r2.MotherAge = Code{Value: 5, Valid: true}
	r2.CohabitationYears = Measure{Value: 999, Valid: true}
	r2.GestationWeeks = Measure{Value: 40, Valid: true}
	r2.Decorate()

	r3 := birth(21, 1, 3, 3.0)
	r3.MultiplicityType = Code{}
	r3.FatherAge = Code{Value: 6, Valid: true}
	r3.MotherAge = Code{Value: 4, Valid: true}
	r3.Decorate()

	r4 := birth(31, 2, 2, 3.0)
	r4.Marital = Code{}
	r4.FatherAge = Code{Value: 5, Valid: true}
	r4.MotherAge = Code{Value: 4, Valid: true}
	r4.Decorate()

	return NewView([]Record{r1, r2, r3, r4})
}

func TestBuildSummaryKPIs(t *testing.T) {
	s := BuildSummary(summaryFixture())

	assert.Equal(t, 4, s.TotalBirths)
	require.True(t, s.AvgWeight.Valid)
	assert.Equal(t, 3.0, s.AvgWeight.Value)

	// One twin in four rows; the row with missing multiplicity counts as a
	// singleton, not as dropped.
	assert.Equal(t, 25.0, s.MultipleRatio)
	// One out-of-wedlock birth; the row with missing marital status stays
	// in the denominator.
	assert.Equal(t, 25.0, s.OutOfWedlockRatio)
}

func TestBuildSummaryMeans(t *testing.T) {
	s := BuildSummary(summaryFixture())

	require.True(t, s.AvgGestationWeeks.Valid)
	assert.Equal(t, 39.0, s.AvgGestationWeeks.Value)

	// The 999 sentinel never averages in.
	require.True(t, s.AvgCohabitationYears.Valid)
	assert.Equal(t, 5.0, s.AvgCohabitationYears.Value)
}

func TestBuildSummaryGroupOrdering(t *testing.T) {
	s := BuildSummary(summaryFixture())

	require.Len(t, s.RegionCounts, 3)
	assert.Equal(t, "서울특별시", s.RegionCounts[0].Key)
	assert.Equal(t, 2, s.RegionCounts[0].Count)

	require.Len(t, s.MonthlyCounts, 3)
	assert.Equal(t, []Group{
		{Key: "1", Count: 2},
		{Key: "2", Count: 1},
		{Key: "3", Count: 1},
	}, s.MonthlyCounts)

	// Heatmap cells follow the age brackets' natural order, and only
	// present combinations appear.
	require.Len(t, s.AgeHeatmap, 3)
	assert.Equal(t, PairGroup{KeyA: "30~34세", KeyB: "25~29세", Count: 1}, s.AgeHeatmap[0])
	assert.Equal(t, PairGroup{KeyA: "30~34세", KeyB: "30~34세", Count: 2}, s.AgeHeatmap[1])
	assert.Equal(t, PairGroup{KeyA: "35~39세", KeyB: "25~29세", Count: 1}, s.AgeHeatmap[2])
}

func TestBuildSummaryTopRegionLimit(t *testing.T) {
	s := BuildSummary(summaryFixture(), WithTopRegionLimit(1))
	require.Len(t, s.TopRegions, 1)
	assert.Equal(t, "서울특별시", s.TopRegions[0].Key)
}

func TestBuildSummaryEmptyView(t *testing.T) {
	s := BuildSummary(NewView(nil))

	assert.Zero(t, s.TotalBirths)
	assert.False(t, s.AvgWeight.Valid)
	assert.Zero(t, s.MultipleRatio)
	assert.Zero(t, s.OutOfWedlockRatio)
	assert.Empty(t, s.GenderCounts)
	assert.Empty(t, s.AgeHeatmap)
	assert.False(t, s.AvgCohabitationYears.Valid)
}

func TestBuildSummaryGolden(t *testing.T) {
	s := BuildSummary(summaryFixture())
	data, err := json.MarshalIndent(s, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "summary", data)
}

func TestBuildSummaryTables(t *testing.T) {
	tables := BuildSummaryTables(BuildSummary(summaryFixture()))
	require.Len(t, tables, 8)

	assert.Equal(t, "출생 통계 요약", tables[0].Title)
	require.Len(t, tables[0].Rows, 6)
	assert.Equal(t, []string{"총 출생아 수", "4"}, tables[0].Rows[0])
	assert.Equal(t, []string{"평균 출생 체중(kg)", "3.00"}, tables[0].Rows[1])

	regionTable := tables[3]
	assert.Equal(t, "시도별 출생아 수", regionTable.Title)
	require.NotEmpty(t, regionTable.Rows)
	assert.Equal(t, []string{"서울특별시", "2"}, regionTable.Rows[0])
}

func TestBuildSummaryTablesMissingMeans(t *testing.T) {
	tables := BuildSummaryTables(BuildSummary(NewView(nil)))
	// Means over no data render as the dashboard's empty-metric caption.
	assert.Equal(t, []string{"평균 임신 주수", "데이터 없음"}, tables[0].Rows[4])
}
