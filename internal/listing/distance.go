package listing

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points given in degrees, rounded to one decimal place.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	return math.Round(distance*10) / 10
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// DistanceText renders a distance for display, switching to meters below 1km.
// Returns "" for a nil distance.
func DistanceText(distance *float64) string {
	if distance == nil {
		return ""
	}
	if *distance < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(*distance*1000)))
	}
	return fmt.Sprintf("%gkm away", *distance)
}
