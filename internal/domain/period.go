package domain

// Period is the popularity window the most-popular feed is queried
// for. Its value doubles as the request path segment and the cache
// partition key.
type Period string

const (
	PeriodOneDay     Period = "1"
	PeriodSevenDays  Period = "7"
	PeriodThirtyDays Period = "30"
)

// DefaultPeriod returns the seven-day window.
func DefaultPeriod() Period {
	return PeriodSevenDays
}

// AllPeriods lists every supported window, shortest first.
func AllPeriods() []Period {
	return []Period{PeriodOneDay, PeriodSevenDays, PeriodThirtyDays}
}

// PeriodFromValue maps a wire value to a Period. Unknown values fall
// back to the default, so UI selectors can pass user input through
// without pre-validating it. Strict validation happens at the use-case
// boundary via IsValid.
func PeriodFromValue(value string) Period {
	for _, p := range AllPeriods() {
		if string(p) == value {
			return p
		}
	}
	return DefaultPeriod()
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodOneDay, PeriodSevenDays, PeriodThirtyDays:
		return true
	}
	return false
}

// Value returns the wire value used in the request path.
func (p Period) Value() string {
	return string(p)
}

// DisplayName returns a human-readable label for the period.
func (p Period) DisplayName() string {
	switch p {
	case PeriodOneDay:
		return "Last Day"
	case PeriodSevenDays:
		return "Last Week"
	case PeriodThirtyDays:
		return "Last Month"
	}
	return string(p)
}
