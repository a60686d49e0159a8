// Package calendar holds the day-precision date used by release and review dates.
package calendar

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// storage layouts a driver may hand back for a date column
var scanLayouts = []string{
	Layout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Date is a calendar day with no time-of-day or zone. The zero value is the zero time.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today(now time.Time) Date {
	return NewDate(now.UTC().Date())
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date must use the YYYY-MM-DD format")
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in the YYYY-MM-DD format")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Date())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("calendar: cannot scan %T into Date", src)
}

func (d *Date) scanString(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t.Date())
			return nil
		}
	}
	return fmt.Errorf("calendar: cannot parse %q as a date", s)
}
