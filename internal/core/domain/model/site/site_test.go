package site_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite(t *testing.T) {
	location, _ := kernel.NewGeoPoint(52.2297, 21.0122)

	t.Run("should create site with trimmed fields", func(t *testing.T) {
		s, err := site.NewSite(" Warszawa ", "00-001", location)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsZero())
		assert.Equal(t, "Warszawa", s.City())
		assert.Equal(t, "00-001", s.PostalCode())
		assert.Equal(t, location, s.Location())
	})

	t.Run("should fail with empty city and postal code", func(t *testing.T) {
		s, err := site.NewSite("", "  ", location)

		assert.Nil(t, s)
		require.ErrorIs(t, err, site.ErrCityIsRequired)
		require.ErrorIs(t, err, site.ErrPostalCodeIsRequired)
	})

	t.Run("should fail with zero location", func(t *testing.T) {
		_, err := site.NewSite("Warszawa", "00-001", kernel.GeoPoint{})

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestRestoreSite(t *testing.T) {
	location, _ := kernel.NewGeoPoint(52.2297, 21.0122)

	s, err := site.RestoreSite(3, "Warszawa", "00-001", location)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), s.ID())

	_, err = site.RestoreSite(-3, "Warszawa", "00-001", location)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSite_DistanceFrom(t *testing.T) {
	origin, _ := kernel.NewGeoPoint(52.2297, 21.0122)
	location, _ := kernel.NewGeoPoint(50.0647, 19.9450)
	s, _ := site.NewSite("Kraków", "30-001", location)

	d, err := s.DistanceFrom(origin)

	require.NoError(t, err)
	assert.InDelta(t, 251.98, d, 0.01)
}

func TestSite_Validate(t *testing.T) {
	var zero site.Site

	assert.Equal(t, site.ErrSiteIsNotConstructed, zero.Validate())
}
