// Package aamva decodes the text payload of an AAMVA driver's-license barcode
// into a canonical record.
//
// Decoding runs in three stages, each exported for diagnostics:
//
//	header, err := aamva.DecodeHeader(raw)      // fixed-width preamble
//	fields, err := aamva.ExtractFields(raw, header) // element lines -> canonical names
//	record, err := aamva.Normalize(fields)       // trimming, name splitting, dates
//
// Most callers use Decode, which runs all three and keeps every intermediate
// result on the returned License. All functions are pure; a License is
// immutable and safe to share between goroutines.
package aamva
