package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yigit/courseplanner/internal/app/models/dto"
	"github.com/yigit/courseplanner/internal/pkg/helpers"
)

func TestCalculateSliceIndices(t *testing.T) {
	for _, tc := range []struct {
		name               string
		page, size, total  int
		wantStart, wantEnd int
	}{
		{"FirstPage", 1, 10, 25, 0, 10},
		{"LastPartialPage", 3, 10, 25, 20, 25},
		{"PastTheEnd", 4, 10, 25, 25, 25},
		{"InvalidPage", 0, 10, 25, 0, 10},
		{"DefaultSize", 1, 0, 100, 0, helpers.DefaultPageSize},
		{"Empty", 1, 10, 0, 0, 0},
		{"HugePage", math.MaxInt / 100, 200, 10, 10, 10},
		{"MaxPage", math.MaxInt, 10, 25, 25, 25},
		{"HugeSize", 2, math.MaxInt, 25, 25, 25},
		{"HugeSizeFirstPage", 1, math.MaxInt, 25, 0, 25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end := helpers.CalculateSliceIndices(tc.page, tc.size, tc.total)
			require.Equal(t, tc.wantStart, start)
			require.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	require.Equal(t, dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, PageSize: 10, TotalItems: 25},
		helpers.NewPaginationInfo(25, 2, 10))
	require.Equal(t, dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 10, TotalItems: 25},
		helpers.NewPaginationInfo(25, 9, 10))
	require.Equal(t, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 0},
		helpers.NewPaginationInfo(0, 1, 10))
}
