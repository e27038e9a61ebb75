package todoist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateKind distinguishes the three wire formats a date can arrive in.
// The kind is preserved so a parsed date renders back to its own literal.
type DateKind uint8

const (
	// DateOnly is a bare calendar date with no time component ("2016-12-01").
	DateOnly DateKind = iota

	// DateFloating is a local timestamp with no zone ("2016-12-06T12:00:00.000000").
	DateFloating

	// DateUTC is a fixed UTC timestamp with a trailing Z ("2016-12-06T13:00:00.000000Z").
	DateUTC
)

const (
	layoutDateOnly = "2006-01-02"
	layoutTime     = "2006-01-02T15:04:05.000000"
)

// Date is a timestamp as the sync API represents it. The zero value is the
// Unix epoch as a date-only value.
type Date struct {
	Time time.Time
	Kind DateKind
}

// ParseDate parses any of the three wire formats, dispatching on the
// presence of a time component and a trailing "Z".
func ParseDate(s string) (Date, error) {
	switch {
	case !strings.ContainsRune(s, 'T'):
		t, err := time.Parse(layoutDateOnly, s)
		if err != nil {
			return Date{}, fmt.Errorf("todoist: parsing date %q: %w", s, err)
		}

		return Date{Time: t, Kind: DateOnly}, nil

	case strings.HasSuffix(s, "Z"):
		t, err := time.Parse(layoutTime, strings.TrimSuffix(s, "Z"))
		if err != nil {
			return Date{}, fmt.Errorf("todoist: parsing date %q: %w", s, err)
		}

		return Date{Time: t.UTC(), Kind: DateUTC}, nil

	default:
		t, err := time.Parse(layoutTime, s)
		if err != nil {
			return Date{}, fmt.Errorf("todoist: parsing date %q: %w", s, err)
		}

		return Date{Time: t, Kind: DateFloating}, nil
	}
}

// String renders the date in the wire format it was parsed from.
func (d Date) String() string {
	switch d.Kind {
	case DateOnly:
		return d.Time.Format(layoutDateOnly)
	case DateUTC:
		return d.Time.UTC().Format(layoutTime) + "Z"
	default:
		return d.Time.Format(layoutTime)
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
