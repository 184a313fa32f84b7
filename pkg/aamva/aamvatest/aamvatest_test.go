package aamvatest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licensedecoder/pkg/aamva"
	"licensedecoder/pkg/aamva/aamvatest"
)

func TestFixturesDecode(t *testing.T) {
	az, err := aamva.Decode(aamvatest.Arizona())
	require.NoError(t, err)
	assert.Equal(t, "D12345678", az.Record().DriverLicenseNumber)

	or, err := aamva.Decode(aamvatest.Oregon())
	require.NoError(t, err)
	rec := or.Record()
	assert.Equal(t, "LEE", rec.LastName)
	assert.Equal(t, "DONG KUN", rec.FirstName)
	assert.Equal(t, "BABAK", rec.MiddleName)
	assert.Equal(t, "SALEM", rec.City)
	assert.Equal(t, "OR", rec.State)
	assert.Equal(t, "4567890", rec.DriverLicenseNumber)
	assert.Equal(t, 70.0, rec.Height)
	assert.True(t, rec.LicenseIssuedDate.IsZero())
}
