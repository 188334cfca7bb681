package dateutil

import (
	"time"
)

// CurrentYear returns the calendar year of the given instant
func CurrentYear(now time.Time) int {
	return now.Year()
}

// YearsUntil returns the whole years from one calendar year to another, clamped at zero
func YearsUntil(fromYear, toYear int) int {
	if toYear <= fromYear {
		return 0
	}
	return toYear - fromYear
}

// YearsUntilAge returns the whole years until a person of currentAge reaches targetAge, clamped at zero
func YearsUntilAge(currentAge, targetAge int) int {
	return YearsUntil(currentAge, targetAge)
}

// AgeInYear projects a current age forward to a later calendar year
func AgeInYear(currentAge, currentYear, year int) int {
	return currentAge + (year - currentYear)
}

// YearAtAge returns the calendar year in which a person of currentAge reaches targetAge.
// Ages already passed resolve to the current year.
func YearAtAge(currentAge, currentYear, targetAge int) int {
	return currentYear + YearsUntilAge(currentAge, targetAge)
}
