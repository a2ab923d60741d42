package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionRate(t *testing.T) {
	cases := []struct {
		name string
		won  int
		lost int
		want float64
	}{
		{"no closed leads", 0, 0, 0},
		{"all won", 5, 0, 100},
		{"all lost", 0, 3, 0},
		{"even split", 1, 1, 50},
		{"one third", 1, 2, 33.3},
		{"two thirds", 2, 1, 66.7},
		{"rounds to one decimal", 1, 7, 12.5},
		{"rounds half up", 1, 15, 6.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConversionRate(tc.won, tc.lost))
		})
	}
}

func TestStatusEnum(t *testing.T) {
	assert.True(t, ValidStatus("new"))
	assert.True(t, ValidStatus("closed_won"))
	assert.False(t, ValidStatus("reopened"))
	assert.False(t, ValidStatus(""))
	assert.Len(t, AllStatuses(), 7)
}

func TestSourceEnum(t *testing.T) {
	assert.True(t, ValidSource("manual"))
	assert.True(t, ValidSource("provider_form"))
	assert.False(t, ValidSource("webhook"))
	assert.Len(t, AllSources(), 5)
}
