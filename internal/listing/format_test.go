package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateMS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-09-05", "Jumaat, 5 September 2025"},
		{"2025-06-01", "Ahad, 1 Jun 2025"},
		{"2025-12-25", "Khamis, 25 Disember 2025"},
		{"", ""},
		{"not-a-date", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDateMS(tt.input))
	}
}
