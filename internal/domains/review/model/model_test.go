package model_test

import (
	"phoenix/internal/domains/review/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproved(t *testing.T) {
	reviews := []model.Review{
		{ID: "r-1", IsApproved: true},
		{ID: "r-2", IsApproved: false},
		{ID: "r-3", IsApproved: true},
	}

	got := model.Approved(reviews)

	assert.Len(t, got, 2)
	assert.Equal(t, "r-1", got[0].ID)
	assert.Equal(t, "r-3", got[1].ID)
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		reviews []model.Review
		want    float64
	}{
		{name: "empty list", reviews: nil, want: 0},
		{name: "single review", reviews: []model.Review{{Rating: 4}}, want: 4},
		{name: "mixed ratings", reviews: []model.Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.AverageRating(tt.reviews), 0.001)
		})
	}
}
