package aamva

import (
	"strconv"
	"strings"
)

// Record is the canonical driver's-license record.
type Record struct {
	FirstName             string  `json:"firstName"`
	MiddleName            string  `json:"middleName"`
	LastName              string  `json:"lastName"`
	Address               string  `json:"address"`
	City                  string  `json:"city"`
	State                 string  `json:"state"`
	ZipCode               string  `json:"zipcode"`
	Country               string  `json:"-"`
	DriverLicenseNumber   string  `json:"driverLicenseNumber"`
	EyeColor              string  `json:"eyeColor"`
	Height                float64 `json:"height"`
	Sex                   string  `json:"sex"`
	DOB                   Date    `json:"dob"`
	LicenseIssuedDate     Date    `json:"licenseIssuedDate"`
	LicenseExpirationDate Date    `json:"licenseExpirationDate"`
}

// Normalize builds a Record from extracted fields. Missing string fields
// become "" and missing dates become the zero Date. Height is mandatory.
//
// Height keeps only the digits of the raw value, so "5-09" reads as 509
// inches rather than 5'9". Jurisdictions that encode feet and inches or a
// unit suffix other than a plain inch count will produce wrong heights.
func Normalize(fields RawFields) (Record, error) {
	rec := Record{
		Address:             trimmed(fields, FieldAddress),
		City:                trimmed(fields, FieldCity),
		State:               strings.ToUpper(trimmed(fields, FieldState)),
		ZipCode:             trimmed(fields, FieldZipCode),
		Country:             strings.ToUpper(trimmed(fields, FieldCountry)),
		EyeColor:            trimmed(fields, FieldEyeColor),
		DriverLicenseNumber: strings.ReplaceAll(trimmed(fields, FieldDriverLicenseNumber), ".", ""),
		Sex:                 normalizeSex(trimmed(fields, FieldSex)),
	}

	name := splitName(fields)
	rec.FirstName = name.first
	rec.MiddleName = name.middle
	rec.LastName = name.last

	var err error
	if rec.Height, err = parseHeight(fields); err != nil {
		return Record{}, err
	}
	if rec.DOB, err = optionalDate(fields, FieldDOB); err != nil {
		return Record{}, err
	}
	if rec.LicenseIssuedDate, err = optionalDate(fields, FieldLicenseIssuedDate); err != nil {
		return Record{}, err
	}
	if rec.LicenseExpirationDate, err = optionalDate(fields, FieldLicenseExpirationDate); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func trimmed(fields RawFields, f Field) string {
	v, ok := fields.Get(f)
	if !ok || v == "" {
		return ""
	}
	return strings.TrimSpace(v)
}

// Some jurisdictions encode sex as 1 (male) and 2 (female).
func normalizeSex(s string) string {
	switch s {
	case "1":
		return "M"
	case "2":
		return "F"
	default:
		return strings.ToUpper(s)
	}
}

func parseHeight(fields RawFields) (float64, error) {
	raw, _ := fields.Get(FieldHeight)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, &FieldParseError{Field: FieldHeight, Value: raw}
	}
	h, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, &FieldParseError{Field: FieldHeight, Value: raw, Err: err}
	}
	return h, nil
}

func optionalDate(fields RawFields, f Field) (Date, error) {
	v := trimmed(fields, f)
	if v == "" {
		return Date{}, nil
	}
	return parseBarcodeDate(f, v)
}
