package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values", 2, 20, 2, 20},
		{"zero page defaults", 0, 20, constants.DefaultPage, 20},
		{"negative page defaults", -5, 20, constants.DefaultPage, 20},
		{"zero limit defaults", 1, 0, 1, constants.DefaultLimit},
		{"limit capped at max", 1, 1000, 1, constants.MaxLimit},
		{"both invalid", -1, -1, constants.DefaultPage, constants.DefaultLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ValidatePagination(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}
