package model

// DateLayout is the calendar-day key used for the one-test-per-day rule.
// The same local-day format is applied at write time and at the can-take check.
const DateLayout = "2006-01-02"

// DailyTest is one daily self-test: an Activity plus a free-text reflection
// and the calendar date derived from its timestamp at creation.
type DailyTest struct {
	Activity
	Reflection string `json:"reflection"`
	Date       string `json:"date"`
}
