package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirulhakim/themajlis/internal/models"
)

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		name   string
		majlis models.Majlis
		want   Label
	}{
		{
			name: "venue wins over address",
			majlis: models.Majlis{
				Venue:   "Masjid Al-Hidayah",
				Address: "12 Jalan X",
				City:    "Shah Alam",
			},
			want: Label{Primary: "Masjid Al-Hidayah", Secondary: "12 Jalan X"},
		},
		{
			name: "venue with no address uses city and state",
			majlis: models.Majlis{
				Venue: "Dewan Seri Melati",
				City:  "Shah Alam",
				State: "Selangor",
			},
			want: Label{Primary: "Dewan Seri Melati", Secondary: "Shah Alam, Selangor"},
		},
		{
			name: "venue with city and no state omits the comma",
			majlis: models.Majlis{
				Venue: "Surau An-Nur",
				City:  "Labuan",
			},
			want: Label{Primary: "Surau An-Nur", Secondary: "Labuan"},
		},
		{
			name:   "venue is trimmed",
			majlis: models.Majlis{Venue: "  Masjid Negara  "},
			want:   Label{Primary: "Masjid Negara"},
		},
		{
			name: "keyword place name promoted from address",
			majlis: models.Majlis{
				Address: "Masjid Negara, Jalan Perdana, Kuala Lumpur",
			},
			want: Label{Primary: "Masjid Negara", Secondary: "Jalan Perdana, Kuala Lumpur"},
		},
		{
			name: "digit-prefixed first segment never promoted",
			majlis: models.Majlis{
				Address: "12, Jalan Besar, Ipoh",
			},
			// The digit check runs before the segment-count clause, so a
			// house number is never promoted; with no city set the whole
			// address becomes the primary line.
			want: Label{Primary: "12, Jalan Besar, Ipoh"},
		},
		{
			name: "digit-prefixed address with city falls back to city as primary",
			majlis: models.Majlis{
				Address: "12 Jalan X",
				City:    "Shah Alam",
				State:   "Selangor",
			},
			want: Label{Primary: "Shah Alam, Selangor", Secondary: "12 Jalan X"},
		},
		{
			name: "keyword-free multi-segment address still promotes first segment",
			majlis: models.Majlis{
				Address: "Taman Indah, Jalan Besar, Ipoh",
			},
			want: Label{Primary: "Taman Indah", Secondary: "Jalan Besar, Ipoh"},
		},
		{
			name:   "single keyword-free segment stays whole",
			majlis: models.Majlis{Address: "Jalan Besar"},
			want:   Label{Primary: "Jalan Besar"},
		},
		{
			name:   "city only",
			majlis: models.Majlis{City: "Kuantan", State: "Pahang"},
			want:   Label{Primary: "Kuantan, Pahang"},
		},
		{
			name:   "nothing at all",
			majlis: models.Majlis{},
			want:   Label{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLabel(tt.majlis))
		})
	}
}
