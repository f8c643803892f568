package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natal-org/natal/codes"
)

func TestDecodeLabel(t *testing.T) {
	assert.Equal(t, "서울특별시", DecodeLabel(codes.Region, Code{Value: 11, Valid: true}))
	assert.Equal(t, "여", DecodeLabel(codes.Gender, Code{Value: 2, Valid: true}))
	assert.Equal(t, "미상", DecodeLabel(codes.AgeBracket, Code{Value: 99, Valid: true}))
}

func TestDecodeLabelDegradesToEmpty(t *testing.T) {
	// Missing code.
	assert.Empty(t, DecodeLabel(codes.Region, Code{}))
	// Unmapped codes, including negatives, over the full integer domain.
	for _, v := range []int{-100, -1, 0, 12, 40, 999, 1 << 20} {
		assert.Empty(t, DecodeLabel(codes.Region, Code{Value: v, Valid: true}), "code %d", v)
	}
}

func TestDecodeLabelIsDeterministic(t *testing.T) {
	c := Code{Value: 31, Valid: true}
	first := DecodeLabel(codes.Region, c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DecodeLabel(codes.Region, c))
	}
}

func TestDecorate(t *testing.T) {
	records := []Record{{
		Region:            Code{Value: 21, Valid: true},
		Gender:            Code{Value: 1, Valid: true},
		MultiplicityType:  Code{Value: 2, Valid: true},
		Marital:           Code{Value: 1, Valid: true},
		FatherAge:         Code{Value: 5, Valid: true},
		MotherAge:         Code{Value: 99, Valid: true},
		FatherNationality: Code{Value: 1, Valid: true},
		MotherNationality: Code{Value: 47, Valid: true}, // unmapped
	}}
	Decorate(records)

	r := records[0]
	assert.Equal(t, "부산광역시", r.RegionName)
	assert.Equal(t, "남", r.GenderLabel)
	assert.Equal(t, "쌍태아", r.MultiplicityTypeLabel)
	assert.Equal(t, "혼인 중 출생", r.MaritalLabel)
	assert.Equal(t, "30~34세", r.FatherAgeLabel)
	assert.Equal(t, "미상", r.MotherAgeLabel)
	assert.Equal(t, "출생한국인", r.FatherNationalityLabel)
	assert.Empty(t, r.MotherNationalityLabel)
	// Fields never set stay missing labels.
	assert.Empty(t, r.MultiplicityOrderLabel)
}
