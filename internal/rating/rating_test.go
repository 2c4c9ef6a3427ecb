package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"single", []int{5}, 5},
		{"mixed", []int{5, 4, 3}, 4},
		{"fractional", []int{5, 4}, 4.5},
		{"thirds", []int{1, 2, 2}, 5.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Average(tt.scores)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAverageEmpty(t *testing.T) {
	got, ok := Average(nil)
	assert.False(t, ok)
	assert.Zero(t, got)

	_, ok = Average([]int{})
	assert.False(t, ok)
}
