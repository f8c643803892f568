package filterspec

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natal-org/natal/engine"
)

func TestParseFullDocument(t *testing.T) {
	spec, err := Parse([]byte(`
year: 2023
regions: [서울특별시, 부산광역시]
genders: [남]
months: [1, 2, 3]
multiplicity_type: 쌍태아
marital_type: 혼인 중 출생
weight_min: 2.5
weight_max: 4.0
drop_missing: true
`))
	require.NoError(t, err)

	require.NotNil(t, spec.Year)
	assert.Equal(t, 2023, *spec.Year)
	assert.Equal(t, []string{"서울특별시", "부산광역시"}, spec.Regions)
	assert.Equal(t, []string{"남"}, spec.Genders)
	assert.Equal(t, []int{1, 2, 3}, spec.Months)
	assert.Equal(t, "쌍태아", spec.MultiplicityType)
	assert.Equal(t, "혼인 중 출생", spec.MaritalType)
	require.NotNil(t, spec.Weight)
	assert.Equal(t, engine.WeightRange{Min: 2.5, Max: 4.0}, *spec.Weight)
	assert.True(t, spec.DropMissingCore)
}

func TestParseEmptyDocument(t *testing.T) {
	spec, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.FilterSpec{}, spec)
}

func TestParseAbsentKeyVersusEmptyList(t *testing.T) {
	spec, err := Parse([]byte("year: 2023\n"))
	require.NoError(t, err)
	assert.Nil(t, spec.Regions, "absent key must mean no filter")

	spec, err = Parse([]byte("regions: []\n"))
	require.NoError(t, err)
	require.NotNil(t, spec.Regions, "explicit empty list must survive as empty selection")
	assert.Empty(t, spec.Regions)
}

func TestParseAcceptsJSON(t *testing.T) {
	spec, err := Parse([]byte(`{"regions": ["제주특별자치도"], "months": [12]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"제주특별자치도"}, spec.Regions)
	assert.Equal(t, []int{12}, spec.Months)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := Parse([]byte("regoins: [서울특별시]\n"))
	require.Error(t, err)
}

func TestParseUnknownLabels(t *testing.T) {
	_, err := Parse([]byte("regions: [서울, 서울특별시]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown region "서울"`)

	_, err = Parse([]byte("genders: [male]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown gender "male"`)

	_, err = Parse([]byte("multiplicity_type: 둘\n"))
	require.Error(t, err)

	_, err = Parse([]byte("marital_type: 혼외\n"))
	require.Error(t, err)
}

func TestParseMonthRange(t *testing.T) {
	_, err := Parse([]byte("months: [0, 13]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month 0 out of range")
	assert.Contains(t, err.Error(), "month 13 out of range")
}

func TestParseWeightRange(t *testing.T) {
	_, err := Parse([]byte("weight_min: 3.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "given together")

	_, err = Parse([]byte("weight_min: 4.0\nweight_max: 3.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestParseCollectsAllErrors(t *testing.T) {
	_, err := Parse([]byte("regions: [nowhere]\nmonths: [99]\nweight_max: 1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
	assert.Contains(t, err.Error(), "out of range")
	assert.Contains(t, err.Error(), "given together")
}

func TestParseFile(t *testing.T) {
	path := t.TempDir() + "/filter.yaml"
	require.NoError(t, os.WriteFile(path, []byte("genders: [여]\n"), 0o644))

	spec, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"여"}, spec.Genders)

	_, err = ParseFile(t.TempDir() + "/absent.yaml")
	require.Error(t, err)
}
