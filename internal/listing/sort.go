package listing

import (
	"sort"
	"strings"

	"github.com/amirulhakim/themajlis/internal/models"
)

// Sort keys accepted by the public listing endpoint. Anything else falls back
// to SortDateAsc.
const (
	SortDateAsc      = "date_asc"
	SortDateDesc     = "date_desc"
	SortCityAsc      = "city_asc"
	SortCityDesc     = "city_desc"
	SortStateAsc     = "state_asc"
	SortStateDesc    = "state_desc"
	SortCategoryAsc  = "category_asc"
	SortCategoryDesc = "category_desc"
)

// Sort returns the list ordered by the given sort key. Date ordering compares
// start dates chronologically and breaks ties on the time of day in the same
// direction; string keys compare lexicographically with missing fields as "".
// The sort is stable, so records with equal keys keep their input order.
func Sort(list []models.Majlis, sortKey string) []models.Majlis {
	sorted := make([]models.Majlis, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		return compare(sorted[i], sorted[j], sortKey) < 0
	})

	return sorted
}

func compare(a, b models.Majlis, sortKey string) int {
	switch sortKey {
	case SortDateDesc:
		return compareByDate(b, a)
	case SortCityAsc:
		return strings.Compare(a.City, b.City)
	case SortCityDesc:
		return strings.Compare(b.City, a.City)
	case SortStateAsc:
		return strings.Compare(a.State, b.State)
	case SortStateDesc:
		return strings.Compare(b.State, a.State)
	case SortCategoryAsc:
		return strings.Compare(a.Category, b.Category)
	case SortCategoryDesc:
		return strings.Compare(b.Category, a.Category)
	default:
		return compareByDate(a, b)
	}
}

func compareByDate(a, b models.Majlis) int {
	dateA, _ := parseDate(a.StartDate)
	dateB, _ := parseDate(b.StartDate)

	if dateA.Before(dateB) {
		return -1
	}
	if dateA.After(dateB) {
		return 1
	}
	return ParseTimeToMinutes(a.Time) - ParseTimeToMinutes(b.Time)
}
