package commands_test

import (
	"math"
	"testing"
	"time"

	"parcellocker/internal/core/domain/model/client"
	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"

	"github.com/stretchr/testify/require"
)

const (
	originLat = 52.2297
	originLon = 21.0122
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// northOf returns a point km kilometres due north of the origin.
func northOf(t *testing.T, km float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(originLat+km/(kernel.EarthRadiusKm*math.Pi/180), originLon)
	require.NoError(t, err)
	return p
}

func testClient(t *testing.T, id kernel.ID, location kernel.GeoPoint) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(id, "Anna", "Nowak", "anna@example.com", "", location)
	require.NoError(t, err)
	return c
}

func testSite(t *testing.T, id kernel.ID, km float64) *site.Site {
	t.Helper()
	s, err := site.RestoreSite(id, "Warszawa", "00-001", northOf(t, km))
	require.NoError(t, err)
	return s
}

func availableCompartment(t *testing.T, id, siteID kernel.ID, size kernel.Size) *compartment.Compartment {
	t.Helper()
	c, err := compartment.RestoreCompartment(id, siteID, size, compartment.Available, nil, nil)
	require.NoError(t, err)
	return c
}

func occupiedCompartment(t *testing.T, id, siteID, parcelID, clientID kernel.ID) *compartment.Compartment {
	t.Helper()
	c, err := compartment.RestoreCompartment(id, siteID, kernel.Small, compartment.Occupied, &parcelID, &clientID)
	require.NoError(t, err)
	return c
}
