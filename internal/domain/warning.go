package domain

// WarningCode categorizes advisory checks raised during an evaluation.
type WarningCode string

const (
	WarnRetireThisYear   WarningCode = "retire_this_year"
	WarnServiceAtCap     WarningCode = "service_at_cap"
	WarnAgeBeforeCurrent WarningCode = "age_before_current"
)

// Warning represents a non-fatal condition; it never stops a projection.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
