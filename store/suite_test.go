package store

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the Store contract against any backend. newStore
// must return an empty store.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("insert assigns increasing ids per kind", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Insert(ctx, KindArt, []byte(`{"A_Title":"a"}`))
		require.NoError(t, err)
		b, err := st.Insert(ctx, KindArt, []byte(`{"A_Title":"b"}`))
		require.NoError(t, err)
		g, err := st.Insert(ctx, KindGallery, []byte(`{}`))
		require.NoError(t, err)

		assert.Greater(t, b.ID, a.ID)
		assert.Equal(t, int64(1), a.Version)
		assert.Positive(t, g.ID)
	})

	t.Run("get returns stored data", func(t *testing.T) {
		st := newStore(t)
		rec, err := st.Insert(ctx, KindUser, []byte(`{"U_Name":"ana"}`))
		require.NoError(t, err)

		got, err := st.Get(ctx, KindUser, rec.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"U_Name":"ana"}`, string(got.Data))
		assert.Equal(t, int64(1), got.Version)
		assert.Equal(t, KindUser, got.Kind)
	})

	t.Run("get unknown id", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Get(ctx, KindUser, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list pages in creation order", func(t *testing.T) {
		st := newStore(t)
		var ids []int64
		for i := 0; i < 5; i++ {
			rec, err := st.Insert(ctx, KindArt, []byte(`{}`))
			require.NoError(t, err)
			ids = append(ids, rec.ID)
		}

		recs, err := st.List(ctx, KindArt, 1, 2)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, ids[1], recs[0].ID)
		assert.Equal(t, ids[2], recs[1].ID)

		all, err := st.List(ctx, KindArt, 0, -1)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		tail, err := st.List(ctx, KindArt, 3, -1)
		require.NoError(t, err)
		assert.Len(t, tail, 2)

		none, err := st.List(ctx, KindArt, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, none)

		past, err := st.List(ctx, KindArt, 10, 2)
		require.NoError(t, err)
		assert.Empty(t, past)

		huge, err := st.List(ctx, KindArt, 1, math.MaxInt)
		require.NoError(t, err)
		require.Len(t, huge, 4)
		assert.Equal(t, ids[1], huge[0].ID)
	})

	t.Run("commit advances versions", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Insert(ctx, KindArt, []byte(`{"n":1}`))
		require.NoError(t, err)
		g, err := st.Insert(ctx, KindGallery, []byte(`{"n":1}`))
		require.NoError(t, err)

		a.Data = []byte(`{"n":2}`)
		g.Data = []byte(`{"n":2}`)
		require.NoError(t, st.Commit(ctx, g, a))
		assert.Equal(t, int64(2), a.Version)
		assert.Equal(t, int64(2), g.Version)

		got, err := st.Get(ctx, KindGallery, g.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"n":2}`, string(got.Data))
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("commit with stale version writes nothing", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Insert(ctx, KindArt, []byte(`{"n":1}`))
		require.NoError(t, err)
		g, err := st.Insert(ctx, KindGallery, []byte(`{"n":1}`))
		require.NoError(t, err)

		fresh, err := st.Get(ctx, KindArt, a.ID)
		require.NoError(t, err)
		fresh.Data = []byte(`{"n":9}`)
		require.NoError(t, st.Commit(ctx, fresh))

		a.Data = []byte(`{"n":2}`)
		g.Data = []byte(`{"n":2}`)
		err = st.Commit(ctx, g, a)
		assert.ErrorIs(t, err, ErrConflict)

		got, err := st.Get(ctx, KindGallery, g.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"n":1}`, string(got.Data))
	})

	t.Run("commit on deleted record", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Insert(ctx, KindArt, []byte(`{}`))
		require.NoError(t, err)
		require.NoError(t, st.Delete(ctx, KindArt, a.ID))

		err = st.Commit(ctx, a)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Insert(ctx, KindArt, []byte(`{}`))
		require.NoError(t, err)
		b, err := st.Insert(ctx, KindArt, []byte(`{}`))
		require.NoError(t, err)

		require.NoError(t, st.Delete(ctx, KindArt, a.ID))
		assert.ErrorIs(t, st.Delete(ctx, KindArt, a.ID), ErrNotFound)

		_, err = st.Get(ctx, KindArt, a.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		recs, err := st.List(ctx, KindArt, 0, -1)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, b.ID, recs[0].ID)
	})

	t.Run("concurrent commits on one record detect the race", func(t *testing.T) {
		st := newStore(t)
		rec, err := st.Insert(ctx, KindUser, []byte(`{}`))
		require.NoError(t, err)

		const writers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				stale := &Record{Kind: KindUser, ID: rec.ID, Version: 1, Data: []byte(`{"w":1}`)}
				if err := st.Commit(ctx, stale); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		got, err := st.Get(ctx, KindUser, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
	})
}
