package engine

import (
	"time"

	"github.com/destinique/backend/internal/types"
)

// zodiacBoundary marks the first day of a sign within the calendar year.
// Signs are resolved by walking the boundaries in order; Capricorn wraps the
// year end so it is the fallback for late December.
type zodiacBoundary struct {
	month time.Month
	day   int
	sign  string
}

var zodiacBoundaries = []zodiacBoundary{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 21, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 22, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

// ZodiacSign maps a calendar date to its Western sun sign using the fixed
// inclusive day boundaries (Aries starts Mar 21, Taurus Apr 20, and so on).
func ZodiacSign(t time.Time) string {
	month, day := t.Month(), t.Day()

	sign := "Capricorn" // Jan 1-19 falls before the Aquarius boundary
	for _, b := range zodiacBoundaries {
		if month > b.month || (month == b.month && day >= b.day) {
			sign = b.sign
		}
	}
	return sign
}

var zodiacElements = map[string]types.WesternElement{
	"Aries":       types.ZodiacFire,
	"Leo":         types.ZodiacFire,
	"Sagittarius": types.ZodiacFire,
	"Taurus":      types.ZodiacEarth,
	"Virgo":       types.ZodiacEarth,
	"Capricorn":   types.ZodiacEarth,
	"Gemini":      types.ZodiacAir,
	"Libra":       types.ZodiacAir,
	"Aquarius":    types.ZodiacAir,
	"Cancer":      types.ZodiacWater,
	"Scorpio":     types.ZodiacWater,
	"Pisces":      types.ZodiacWater,
}

// calculateZodiac derives the horoscope entry of an assessment set.
func calculateZodiac(t time.Time) types.ZodiacAssessment {
	sign := ZodiacSign(t)
	return types.ZodiacAssessment{
		Sign:    sign,
		Element: zodiacElements[sign],
	}
}
