package shared_test

import (
	"phoenix/shared"
	"phoenix/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "hotels:list:1:10", shared.BuildCacheKey("hotels", "list", "1", "10"))
	assert.Equal(t, "bookings", shared.BuildCacheKey("bookings"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}

	assert.Equal(t, "hotels:get_all:2:10", shared.BuildCacheKeyWithQuery("hotels:get_all", params))
	assert.Equal(t, "hotels:get_all:2:10:Nairobi", shared.BuildCacheKeyWithQuery("hotels:get_all", params, "Nairobi"))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}
