package usecase

import "time"

// A dateStrategy is one pure parsing attempt: an ordered list of layouts
// tried against the raw value.
type dateStrategy struct {
	name    string
	layouts []string
}

func (s dateStrategy) parse(value string) (time.Time, bool) {
	for _, layout := range s.layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateStrategies is the fallback chain: a mixed-format parse that prefers
// day-before-month for ambiguous numeric dates, then an unconstrained
// month-first parse. The resolver short-circuits on first success.
var dateStrategies = []dateStrategy{
	{
		name: "day-first",
		layouts: []string{
			time.DateOnly,
			"02/01/2006",
			"2/1/2006",
			"02-01-2006",
			"02.01.2006",
			"2 January 2006",
			"2 Jan 2006",
			"02 Jan 2006",
			time.DateTime,
			time.RFC3339,
		},
	},
	{
		name: "generic",
		layouts: []string{
			"01/02/2006",
			"1/2/2006",
			"January 2, 2006",
			"Jan 2, 2006",
			"2006/01/02",
			"01-02-2006",
			"2006-01-02T15:04:05",
		},
	},
}

// resolveDate runs the chain over a raw value. It returns the resolved date
// and the index of the strategy that succeeded, or -1 when every strategy
// failed. It never errors; unresolvable input degrades to the -1 marker.
func resolveDate(value string) (time.Time, int) {
	if value == "" {
		return time.Time{}, -1
	}
	for i, s := range dateStrategies {
		if t, ok := s.parse(value); ok {
			return t, i
		}
	}
	return time.Time{}, -1
}
