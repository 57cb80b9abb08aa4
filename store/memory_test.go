package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewMemory()
	})
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	data := []byte(`{"A_Title":"a"}`)
	rec, err := st.Insert(ctx, KindArt, data)
	require.NoError(t, err)
	data[2] = 'X'

	got, err := st.Get(ctx, KindArt, rec.ID)
	require.NoError(t, err)
	got.Data[2] = 'Y'

	again, err := st.Get(ctx, KindArt, rec.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"A_Title":"a"}`, string(again.Data))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, offset, limit int
		start, end       int
	}{
		{5, 0, -1, 0, 5},
		{5, 1, 2, 1, 3},
		{5, 4, 10, 4, 5},
		{5, 7, 1, 5, 5},
		{0, 0, -1, 0, 0},
		{5, 1, math.MaxInt, 1, 5},
		{5, math.MaxInt, math.MaxInt, 5, 5},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.offset, tt.limit)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}
