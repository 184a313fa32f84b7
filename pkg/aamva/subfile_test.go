package aamva

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("aliases resolve to one field", func(t *testing.T) {
		pairs := map[string]Field{
			"DAA": FieldName, "DLDAA": FieldName,
			"DAB": FieldLastName, "DCS": FieldLastName,
			"DAC": FieldFirstName, "DCT": FieldFirstName,
			"DAI": FieldCity, "DAN": FieldCity,
			"DAJ": FieldState, "DAO": FieldState,
			"DAK": FieldZipCode, "DAP": FieldZipcode,
		}
		for code, want := range pairs {
			got, ok := Lookup(code)
			assert.True(t, ok, code)
			assert.Equal(t, want, got, code)
		}
	})

	t.Run("unknown codes have no mapping", func(t *testing.T) {
		for _, code := range []string{"", "DA", "DAZ", "daq", "ZZZ", "DLDAQ"} {
			_, ok := Lookup(code)
			assert.False(t, ok, code)
		}
	})

	t.Run("table is total and stable", func(t *testing.T) {
		assert.Len(t, fieldCodes, 22)
		for code, want := range fieldCodes {
			first, _ := Lookup(code)
			second, _ := Lookup(code)
			assert.Equal(t, want, first)
			assert.Equal(t, first, second)
		}
	})
}

func TestExtractFields(t *testing.T) {
	t.Run("maps known codes and keeps values untrimmed", func(t *testing.T) {
		raw := barcode("AAMVA", 8, "DAQD123", "DAG 12 ELM ST ", "DCSLEE")
		h, err := DecodeHeader(raw)
		require.NoError(t, err)

		fields, err := ExtractFields(raw, h)
		require.NoError(t, err)
		assert.Equal(t, RawFields{
			FieldDriverLicenseNumber: "D123",
			FieldAddress:             " 12 ELM ST ",
			FieldLastName:            "LEE",
		}, fields)
	})

	t.Run("later aliases overwrite earlier ones", func(t *testing.T) {
		raw := barcode("AAMVA", 8, "DAIMESA", "DANTEMPE")
		h, err := DecodeHeader(raw)
		require.NoError(t, err)

		fields, err := ExtractFields(raw, h)
		require.NoError(t, err)
		assert.Equal(t, "TEMPE", fields[FieldCity])
	})

	t.Run("ignores short lines and unknown codes", func(t *testing.T) {
		raw := barcode("ANSI ", 3, "DAQ", "ZZZjunk", "", "DA", "DCTDONG", "DLDAQ999")
		h, err := DecodeHeader(raw)
		require.NoError(t, err)

		fields, err := ExtractFields(raw, h)
		require.NoError(t, err)
		assert.Equal(t, RawFields{FieldFirstName: "DONG"}, fields)
	})

	t.Run("only reads inside the subfile", func(t *testing.T) {
		raw := barcode("AAMVA", 8, "DCSLEE") + "\nDACOUTSIDE"
		h, err := DecodeHeader(raw)
		require.NoError(t, err)

		fields, err := ExtractFields(raw, h)
		require.NoError(t, err)
		_, ok := fields.Get(FieldFirstName)
		assert.False(t, ok)
	})

	t.Run("range past end of text is a format error", func(t *testing.T) {
		raw := barcode("AAMVA", 8, "DCSLEE")
		h, err := DecodeHeader(raw)
		require.NoError(t, err)
		h.SubfileLength++

		fields, err := ExtractFields(raw, h)
		require.ErrorIs(t, err, ErrFormat)
		assert.Nil(t, fields)
	})

	t.Run("negative offset is a format error", func(t *testing.T) {
		_, err := ExtractFields("anything", Header{SubfileOffset: -1, SubfileLength: 2})
		require.ErrorIs(t, err, ErrFormat)
	})
}
