package activity

import (
	"encoding/json"
	"time"
)

// dateKeyLayout is the local calendar-date key format.
const dateKeyLayout = "2006-01-02"

// DateKey converts a time to its calendar-date key in loc. Every piece of
// streak and heatmap math goes through this one conversion so time-zone
// handling cannot drift between call sites.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateKeyLayout)
}

// EventDateKey normalizes a heterogeneous timestamp value to a local
// calendar-date key. Accepted shapes: time.Time, RFC3339(-Nano) or bare
// date strings, and epoch numbers in seconds or milliseconds. The second
// return is false for anything unparseable; callers skip those events.
func EventDateKey(v any, loc *time.Location) (string, bool) {
	switch ts := v.(type) {
	case time.Time:
		if ts.IsZero() {
			return "", false
		}
		return DateKey(ts, loc), true
	case string:
		return parseStringKey(ts, loc)
	case int:
		return epochKey(float64(ts), loc)
	case int64:
		return epochKey(float64(ts), loc)
	case float64:
		return epochKey(ts, loc)
	case json.Number:
		f, err := ts.Float64()
		if err != nil {
			return "", false
		}
		return epochKey(f, loc)
	default:
		return "", false
	}
}

func parseStringKey(s string, loc *time.Location) (string, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateKeyLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == dateKeyLayout {
				// Bare dates are already local-date keys.
				return s, true
			}
			return DateKey(t, loc), true
		}
	}
	return "", false
}

// epochKey interprets an epoch number, accepting both seconds and
// milliseconds since older logs recorded millisecond timestamps.
func epochKey(v float64, loc *time.Location) (string, bool) {
	if v <= 0 {
		return "", false
	}
	if v > 1e11 {
		v /= 1000
	}
	sec := int64(v)
	return DateKey(time.Unix(sec, 0), loc), true
}
