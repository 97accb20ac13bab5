package property

import "time"

// Normalizer converts an accepted alternate representation into the
// field's canonical one. It is invoked exactly once, at assignment time,
// before type validation. Returning false leaves the value untouched.
type Normalizer func(v any) (any, bool)

// DatetimeToMillis accepts time.Time values on numeric fields and
// converts them to milliseconds since the Unix epoch.
//
// The conversion is irreversible: once assigned, the field holds a plain
// number and the original temporal type is gone.
func DatetimeToMillis(v any) (any, bool) {
	switch t := v.(type) {
	case time.Time:
		return float64(t.UnixMilli()), true
	case *time.Time:
		if t == nil {
			return nil, false
		}
		return float64(t.UnixMilli()), true
	default:
		return nil, false
	}
}
