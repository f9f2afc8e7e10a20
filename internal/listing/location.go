package listing

import (
	"strings"

	"github.com/amirulhakim/themajlis/internal/models"
)

// Label is the two-line location description shown on a majlis card.
// Both fields empty means the record has no usable location and the caller
// should render a "no location" placeholder.
type Label struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// placeKeywords mark an address segment as a place name rather than a street
// line. Tuned for Malaysian addresses.
var placeKeywords = []string{
	"masjid",
	"surau",
	"kompleks",
	"dewan",
	"pusat",
	"sekolah",
	"universiti",
}

// ResolveLabel derives the display label for a majlis from its heterogeneous
// location fields. The venue wins when set; otherwise the first
// comma-separated address segment is promoted to the primary line when it
// looks like a place name. This is a best-effort presentation heuristic, not
// a geocoding result.
func ResolveLabel(m models.Majlis) Label {
	if venue := strings.TrimSpace(m.Venue); venue != "" {
		label := Label{Primary: venue}
		if address := strings.TrimSpace(m.Address); address != "" {
			label.Secondary = address
		} else if m.City != "" {
			label.Secondary = cityState(m)
		}
		return label
	}

	if m.Address != "" {
		addressParts := strings.Split(m.Address, ", ")
		firstPart := strings.TrimSpace(addressParts[0])

		if !startsWithDigit(firstPart) && (containsPlaceKeyword(firstPart) || len(addressParts) > 1) {
			return Label{
				Primary:   firstPart,
				Secondary: strings.Join(addressParts[1:], ", "),
			}
		}

		if m.City != "" {
			return Label{Primary: cityState(m), Secondary: m.Address}
		}
		return Label{Primary: m.Address}
	}

	if m.City != "" {
		return Label{Primary: cityState(m)}
	}

	return Label{}
}

func cityState(m models.Majlis) string {
	if m.State != "" {
		return m.City + ", " + m.State
	}
	return m.City
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func containsPlaceKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range placeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
