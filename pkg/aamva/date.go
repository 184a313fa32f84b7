package aamva

import (
	"encoding/json"
	"time"
)

const (
	barcodeDateLayout = "20060102"
	// DateLayout is the rendering used for dates in serialized records.
	DateLayout = "2006-01-02"
)

// Date is an optional calendar date. The zero value means "no value".
type Date struct {
	t     time.Time
	valid bool
}

// NewDate returns a present date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return !d.valid }

// Time returns the date at midnight UTC and whether it is present.
func (d Date) Time() (time.Time, bool) { return d.t, d.valid }

// String renders yyyy-MM-dd, or "" when absent.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{t: t, valid: true}
	return nil
}

func parseBarcodeDate(f Field, raw string) (Date, error) {
	if len(raw) != len(barcodeDateLayout) || !allDigits(raw) {
		return Date{}, &DateParseError{Field: f, Value: raw}
	}
	t, err := time.Parse(barcodeDateLayout, raw)
	if err != nil {
		return Date{}, &DateParseError{Field: f, Value: raw, Err: err}
	}
	return Date{t: t, valid: true}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
