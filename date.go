package notion

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is either a calendar date or a date with a time component.
// Dates without time are serialized as "YYYY-MM-DD",
// dates with time as RFC 3339 timestamps.
type Date struct {
	time.Time
	HasTime bool
}

// NewDate creates a Date without a time component.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewDateTime creates a Date with a time component.
func NewDateTime(t time.Time) Date {
	return Date{Time: t, HasTime: true}
}

// ParseDate reads either form.
func ParseDate(s string) (Date, error) {
	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return Date{Time: t}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t, HasTime: true}, nil
}

func (d Date) String() string {
	if d.HasTime {
		return d.Time.Format(time.RFC3339Nano)
	}
	return d.Time.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is the value of date properties and date mentions.
type DateRange struct {
	Start    Date    `json:"start"`
	End      *Date   `json:"end"`
	TimeZone *string `json:"time_zone"`
}
