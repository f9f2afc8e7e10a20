package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirulhakim/themajlis/internal/models"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

// majlisAt places an event roughly the given number of km due north of the
// reference point. One degree of latitude is about 111.19 km.
func majlisAt(title string, refLat, refLon, km float64) models.Majlis {
	lat, lon := coords(refLat+km/111.19, refLon)
	return models.Majlis{Title: title, Latitude: lat, Longitude: lon}
}

func TestFilterByDistanceExcludesBeyondRadius(t *testing.T) {
	refLat, refLon := 3.1390, 101.6869
	list := []models.Majlis{
		majlisAt("far", refLat, refLon, 80),
		majlisAt("near", refLat, refLon, 5),
		majlisAt("mid", refLat, refLon, 30),
	}

	got := FilterByDistance(list, refLat, refLon, 50)

	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].Title)
	assert.Equal(t, "mid", got[1].Title)
	require.NotNil(t, got[0].Distance)
	require.NotNil(t, got[1].Distance)
	assert.InDelta(t, 5.0, *got[0].Distance, 0.5)
	assert.InDelta(t, 30.0, *got[1].Distance, 0.5)
}

func TestFilterByDistanceKeepsRecordsWithoutCoordinates(t *testing.T) {
	refLat, refLon := 3.1390, 101.6869
	list := []models.Majlis{
		{Title: "no coords A"},
		majlisAt("near", refLat, refLon, 5),
		{Title: "no coords B"},
	}

	got := FilterByDistance(list, refLat, refLon, 10)

	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Title)
	// Unknown distances sort last, keeping their relative order.
	assert.Equal(t, "no coords A", got[1].Title)
	assert.Equal(t, "no coords B", got[2].Title)
	assert.Nil(t, got[1].Distance)
	assert.Nil(t, got[2].Distance)
}

func TestFilterByDistanceKeepsNoCoordRecordsAtAnyRadius(t *testing.T) {
	list := []models.Majlis{{Title: "no coords"}}
	got := FilterByDistance(list, 3.1390, 101.6869, 0.1)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Distance)
}

func TestFilterByDistanceDoesNotMutateInput(t *testing.T) {
	refLat, refLon := 3.1390, 101.6869
	list := []models.Majlis{
		majlisAt("b", refLat, refLon, 30),
		majlisAt("a", refLat, refLon, 5),
	}

	FilterByDistance(list, refLat, refLon, 50)

	assert.Equal(t, "b", list[0].Title)
	assert.Equal(t, "a", list[1].Title)
	assert.Nil(t, list[0].Distance)
	assert.Nil(t, list[1].Distance)
}
