package aamva

// License is a fully decoded barcode together with the intermediate results
// that produced it.
type License struct {
	header Header
	fields RawFields
	record Record
}

// Decode parses raw barcode text. It either returns a complete License or an
// error; no partial record is ever returned.
func Decode(raw string) (*License, error) {
	h, err := DecodeHeader(raw)
	if err != nil {
		return nil, err
	}
	fields, err := ExtractFields(raw, h)
	if err != nil {
		return nil, err
	}
	rec, err := Normalize(fields)
	if err != nil {
		return nil, err
	}
	return &License{header: h, fields: fields, record: rec}, nil
}

// Header returns the decoded preamble.
func (l *License) Header() Header { return l.header }

// RawFields returns a copy of the extracted field map.
func (l *License) RawFields() RawFields { return l.fields.clone() }

// Record returns the canonical record.
func (l *License) Record() Record { return l.record }
