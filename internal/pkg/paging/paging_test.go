package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		offset int
		limit  int
		want   paging.Window
	}{
		{name: "defaults", want: paging.Window{Offset: 0, Limit: paging.DefaultLimit}},
		{name: "explicit", offset: 10, limit: 5, want: paging.Window{Offset: 10, Limit: 5}},
		{name: "capped", offset: 3, limit: 10000, want: paging.Window{Offset: 3, Limit: paging.MaxLimit}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paging.Normalize(tc.offset, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRejectsNegatives(t *testing.T) {
	_, err := paging.Normalize(-1, 10)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "skip")

	_, err = paging.Normalize(0, -10)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "limit")
}

func TestWindowEnd(t *testing.T) {
	assert.Equal(t, 15, paging.Window{Offset: 10, Limit: 5}.End())
}
