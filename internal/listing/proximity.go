package listing

import (
	"math"
	"sort"

	"github.com/amirulhakim/themajlis/internal/models"
)

// FilterByDistance annotates each majlis with its distance from the given
// position and drops those further than maxDistanceKm. Records without
// coordinates are never dropped; they keep a nil Distance and sort after all
// records with a known distance. The input slice is not modified.
func FilterByDistance(list []models.Majlis, userLat, userLon, maxDistanceKm float64) []models.Majlis {
	filtered := make([]models.Majlis, 0, len(list))

	for _, m := range list {
		if m.Latitude == nil || m.Longitude == nil {
			m.Distance = nil
			filtered = append(filtered, m)
			continue
		}

		d := DistanceKm(userLat, userLon, *m.Latitude, *m.Longitude)
		if d > maxDistanceKm {
			continue
		}
		m.Distance = &d
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return distanceKey(filtered[i]) < distanceKey(filtered[j])
	})

	return filtered
}

func distanceKey(m models.Majlis) float64 {
	if m.Distance == nil {
		return math.Inf(1)
	}
	return *m.Distance
}
