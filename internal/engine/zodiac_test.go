package engine

import (
	"testing"
	"time"

	"github.com/destinique/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestZodiacSign_Boundaries(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.March, 21, "Aries"},
		{time.April, 19, "Aries"},
		{time.April, 20, "Taurus"},
		{time.May, 20, "Taurus"},
		{time.May, 21, "Gemini"},
		{time.June, 20, "Gemini"},
		{time.June, 21, "Cancer"},
		{time.July, 22, "Cancer"},
		{time.July, 23, "Leo"},
		{time.August, 22, "Leo"},
		{time.August, 23, "Virgo"},
		{time.September, 22, "Virgo"},
		{time.September, 23, "Libra"},
		{time.October, 22, "Libra"},
		{time.October, 23, "Scorpio"},
		{time.November, 21, "Scorpio"},
		{time.November, 22, "Sagittarius"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
		{time.December, 31, "Capricorn"},
		{time.January, 1, "Capricorn"},
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 18, "Aquarius"},
		{time.February, 19, "Pisces"},
		{time.March, 20, "Pisces"},
	}

	for _, tc := range cases {
		got := ZodiacSign(date(1990, tc.month, tc.day))
		assert.Equal(t, tc.want, got, "%v %d", tc.month, tc.day)
	}
}

func TestZodiacElements_CoverAllSigns(t *testing.T) {
	counts := map[types.WesternElement]int{}
	for _, element := range zodiacElements {
		counts[element]++
	}

	assert.Len(t, zodiacElements, 12)
	for _, element := range []types.WesternElement{types.ZodiacFire, types.ZodiacEarth, types.ZodiacAir, types.ZodiacWater} {
		assert.Equal(t, 3, counts[element], "element %s", element)
	}
}

func TestCalculateZodiac(t *testing.T) {
	z := calculateZodiac(date(1990, time.June, 15))
	assert.Equal(t, "Gemini", z.Sign)
	assert.Equal(t, types.ZodiacAir, z.Element)
}
