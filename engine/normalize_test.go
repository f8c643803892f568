package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Code
	}{
		{"plain integer", "11", Code{Value: 11, Valid: true}},
		{"float truncates", "11.0", Code{Value: 11, Valid: true}},
		{"truncation toward zero", "2.9", Code{Value: 2, Valid: true}},
		{"negative truncation toward zero", "-1.5", Code{Value: -1, Valid: true}},
		{"surrounding whitespace", " 21 ", Code{Value: 21, Valid: true}},
		{"empty cell", "", Code{}},
		{"whitespace only", "   ", Code{}},
		{"non-numeric", "서울", Code{}},
		{"mixed text", "11abc", Code{}},
		{"nan literal", "NaN", Code{}},
		{"infinity literal", "Inf", Code{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCode(tc.raw))
		})
	}
}

func TestParseMeasure(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Measure
	}{
		{"float", "3.14", Measure{Value: 3.14, Valid: true}},
		{"integer reads as float", "3", Measure{Value: 3, Valid: true}},
		{"negative", "-0.5", Measure{Value: -0.5, Valid: true}},
		{"whitespace", " 2.5 ", Measure{Value: 2.5, Valid: true}},
		{"empty cell", "", Measure{}},
		{"non-numeric", "abc", Measure{}},
		{"nan literal", "nan", Measure{}},
		{"negative infinity", "-Inf", Measure{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseMeasure(tc.raw))
		})
	}
}
