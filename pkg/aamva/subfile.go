package aamva

import "strings"

const elementCodeLen = 3

// ExtractFields slices the data subfile described by h out of raw and maps
// each element line to its canonical field. Lines that are too short or carry
// an unknown code are skipped. When a field appears more than once the last
// line wins.
func ExtractFields(raw string, h Header) (RawFields, error) {
	start, end := h.SubfileOffset, h.SubfileOffset+h.SubfileLength
	if h.SubfileOffset < 0 || h.SubfileLength < 0 {
		return nil, formatErrorf("negative subfile range offset=%d length=%d", h.SubfileOffset, h.SubfileLength)
	}
	if end > len(raw) {
		return nil, formatErrorf("subfile [%d:%d] exceeds barcode length %d", start, end, len(raw))
	}

	fields := make(RawFields)
	for _, line := range strings.Split(raw[start:end], "\n") {
		if len(line) <= elementCodeLen {
			continue
		}
		if f, ok := Lookup(line[:elementCodeLen]); ok {
			fields[f] = line[elementCodeLen:]
		}
	}
	return fields, nil
}
