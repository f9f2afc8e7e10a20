package listing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmIdentity(t *testing.T) {
	points := [][2]float64{
		{3.1390, 101.6869},
		{0, 0},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{3.1390, 101.6869, 3.0733, 101.5185},
		{1.4927, 103.7414, 6.1254, 102.2381},
		{-2.5, 110.0, 4.6, 101.1},
	}
	for _, p := range pairs {
		assert.Equal(t,
			DistanceKm(p.lat1, p.lon1, p.lat2, p.lon2),
			DistanceKm(p.lat2, p.lon2, p.lat1, p.lon1),
		)
	}
}

func TestDistanceKmKnownValue(t *testing.T) {
	// Kuala Lumpur city centre to Shah Alam: 20.07 km before rounding.
	assert.Equal(t, 20.1, DistanceKm(3.1390, 101.6869, 3.0733, 101.5185))
}

func TestDistanceKmRounding(t *testing.T) {
	d := DistanceKm(3.1390, 101.6869, 3.2000, 101.7000)
	assert.InDelta(t, math.Round(d*10), d*10, 1e-9, "must carry exactly one decimal")
}

func TestDistanceText(t *testing.T) {
	near := 0.8
	far := 18.1
	tests := []struct {
		name     string
		distance *float64
		want     string
	}{
		{"nil distance", nil, ""},
		{"under 1km renders meters", &near, "800m away"},
		{"kilometers", &far, "18.1km away"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DistanceText(tt.distance))
		})
	}
}
