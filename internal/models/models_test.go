package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/models"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"iso timestamp", "2024-01-15T00:00:00", "2024-01-15"},
		{"timestamp with zone", "2024-01-15T10:30:00Z", "2024-01-15"},
		{"plain date untouched", "2024-01-15", "2024-01-15"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, models.NormalizeDate(tc.input))
		})
	}
}
