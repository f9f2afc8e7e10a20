package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirulhakim/themajlis/internal/models"
)

func titles(list []models.Majlis) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.Title
	}
	return out
}

func TestSortDateWithTimeTieBreak(t *testing.T) {
	list := []models.Majlis{
		{Title: "late", StartDate: "2025-07-01", Time: "09:00"},
		{Title: "early", StartDate: "2025-07-01", Time: "08:00"},
		{Title: "next day", StartDate: "2025-07-02", Time: "07:00"},
	}

	asc := Sort(list, SortDateAsc)
	assert.Equal(t, []string{"early", "late", "next day"}, titles(asc))

	desc := Sort(list, SortDateDesc)
	assert.Equal(t, []string{"next day", "late", "early"}, titles(desc))
}

func TestSortStringKeys(t *testing.T) {
	list := []models.Majlis{
		{Title: "c", City: "Shah Alam", State: "Selangor", Category: "Hadith"},
		{Title: "a", City: "Ipoh", State: "Perak", Category: "Al-Quran"},
		{Title: "b", City: "Kuantan", State: "Pahang", Category: "Fiqh"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, titles(Sort(list, SortCityAsc)))
	assert.Equal(t, []string{"c", "b", "a"}, titles(Sort(list, SortCityDesc)))
	assert.Equal(t, []string{"b", "a", "c"}, titles(Sort(list, SortStateAsc)))
	assert.Equal(t, []string{"a", "b", "c"}, titles(Sort(list, SortCategoryAsc)))
}

func TestSortMissingFieldSortsFirstAscending(t *testing.T) {
	list := []models.Majlis{
		{Title: "with city", City: "Melaka"},
		{Title: "no city"},
	}

	got := Sort(list, SortCityAsc)
	assert.Equal(t, []string{"no city", "with city"}, titles(got))
}

func TestSortUnknownKeyFallsBackToDateAsc(t *testing.T) {
	list := []models.Majlis{
		{Title: "b", StartDate: "2025-07-02"},
		{Title: "a", StartDate: "2025-07-01"},
	}

	got := Sort(list, "price_asc")
	assert.Equal(t, []string{"a", "b"}, titles(got))
}

func TestSortIsStable(t *testing.T) {
	list := []models.Majlis{
		{Title: "first", StartDate: "2025-07-01", Time: "08:00"},
		{Title: "second", StartDate: "2025-07-01", Time: "08:00"},
		{Title: "third", StartDate: "2025-07-01", Time: "08:00"},
	}

	got := Sort(list, SortDateAsc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	list := []models.Majlis{
		{Title: "b", StartDate: "2025-07-02"},
		{Title: "a", StartDate: "2025-07-01"},
	}

	got := Sort(list, SortDateAsc)
	require.Equal(t, []string{"a", "b"}, titles(got))
	assert.Equal(t, []string{"b", "a"}, titles(list))
}
