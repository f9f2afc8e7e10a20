package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Majlis is a single event listing. Location fields are free text and any
// subset of them may be empty; coordinates are only set when the organizer
// picked a geocoded place, and are always both present or both absent.
type Majlis struct {
	gorm.Model
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Speaker   string    `gorm:"not null" json:"speaker"`
	Category  string    `gorm:"not null" json:"category"`
	Venue     string    `json:"venue"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	StartDate string    `gorm:"not null" json:"start_date"`
	EndDate   string    `json:"end_date"`
	Time      string    `json:"time"`
	Audience  string    `gorm:"not null" json:"audience"`

	// PosterURL holds a JSON array of poster URLs. Legacy rows may contain a
	// bare URL or a URL with an embedded JSON array; always read it through
	// helpers.NormalizePosterURLs.
	PosterURL string `json:"poster_url"`

	LikeCount int      `gorm:"default:0" json:"like_count"`
	LikedBy   []string `gorm:"serializer:json" json:"liked_by"`

	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`
	User      User      `gorm:"foreignKey:CreatedBy" json:"-"`

	// Distance in km from the caller's position, set by the proximity filter
	// for the current request only. Nil when the record has no coordinates or
	// proximity mode is off.
	Distance *float64 `gorm:"-" json:"distance,omitempty"`
}

func (m *Majlis) TableName() string {
	return "majlis"
}

func (m *Majlis) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// CategoryDelimiter joins the selected categories into the single stored
// Category string. Category names never contain it, so Split/Join round-trips.
const CategoryDelimiter = ", "

// MajlisCategories is the fixed set of categories an organizer can pick from.
var MajlisCategories = []string{
	"Al-Quran",
	"Hadith",
	"Fiqh",
	"Sirah",
	"Majlis Ilmu",
	"Majlis Zikir",
	"Majlis Maulid",
}

// MajlisAudiences is the fixed set of audience targeting values.
var MajlisAudiences = []string{
	"Muslimin sahaja",
	"Muslimat sahaja",
	"Muslimin & Muslimat",
}

// MalaysianStates lists every state and federal territory offered by the
// state filter.
var MalaysianStates = []string{
	"Johor",
	"Kedah",
	"Kelantan",
	"Kuala Lumpur",
	"Labuan",
	"Melaka",
	"Negeri Sembilan",
	"Pahang",
	"Penang",
	"Perak",
	"Perlis",
	"Putrajaya",
	"Sabah",
	"Sarawak",
	"Selangor",
	"Terengganu",
}

func IsValidCategory(name string) bool {
	for _, c := range MajlisCategories {
		if c == name {
			return true
		}
	}
	return false
}

func IsValidAudience(name string) bool {
	for _, a := range MajlisAudiences {
		if a == name {
			return true
		}
	}
	return false
}
