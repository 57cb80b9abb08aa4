package helpers

import (
	"context"
	"testing"
	"time"

	"BEARSTY_server/schemas"
	"BEARSTY_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://example.test"

// flakyStore fails the first conflicts commits with store.ErrConflict
type flakyStore struct {
	store.Store
	conflicts int
	commits   int
}

func (f *flakyStore) Commit(ctx context.Context, recs ...*store.Record) error {
	f.commits++
	if f.conflicts > 0 {
		f.conflicts--
		return store.ErrConflict
	}
	return f.Store.Commit(ctx, recs...)
}

func seed(t *testing.T, st store.Store) (*schemas.User, *schemas.User, *schemas.Art, *schemas.Gallery) {
	t.Helper()
	ctx := context.Background()

	ana := &schemas.User{Name: "ana"}
	require.NoError(t, Create(ctx, st, ana))
	bo := &schemas.User{Name: "bo"}
	require.NoError(t, Create(ctx, st, bo))

	art := &schemas.Art{Title: "sunset", User: &schemas.UserRef{ID: ana.ID, Self: UserURL(base, ana.ID)}}
	require.NoError(t, Create(ctx, st, art))
	gallery := &schemas.Gallery{Name: "Untitled", User: &schemas.UserRef{ID: ana.ID, Self: UserURL(base, ana.ID)}}
	require.NoError(t, Create(ctx, st, gallery))

	return ana, bo, art, gallery
}

func TestLinkUnlinkArt(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	_, _, art, gallery := seed(t, st)
	rel := &Relations{Store: st, Attempts: 3}

	linked, err := rel.LinkArt(ctx, base, gallery.ID, art.ID)
	require.NoError(t, err)
	assert.Equal(t, []schemas.ArtRef{ArtMini(base, art.ID)}, linked.Arts)

	storedArt, err := GetArt(ctx, st, art.ID)
	require.NoError(t, err)
	assert.Equal(t, []schemas.GalleryRef{GalleryMini(base, gallery.ID)}, storedArt.Galleries)

	_, err = rel.LinkArt(ctx, base, gallery.ID, art.ID)
	assert.ErrorIs(t, err, ErrAlreadyLinked)
	assert.True(t, IsForbidden(err))

	require.NoError(t, rel.UnlinkArt(ctx, gallery.ID, art.ID))
	assert.ErrorIs(t, rel.UnlinkArt(ctx, gallery.ID, art.ID), ErrNotLinked)

	storedArt, err = GetArt(ctx, st, art.ID)
	require.NoError(t, err)
	assert.Empty(t, storedArt.Galleries)
	storedGallery, err := GetGallery(ctx, st, gallery.ID)
	require.NoError(t, err)
	assert.Empty(t, storedGallery.Arts)
}

func TestLinkArtMissing(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	_, _, art, gallery := seed(t, st)
	rel := &Relations{Store: st, Attempts: 3}

	_, err := rel.LinkArt(ctx, base, gallery.ID+100, art.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = rel.LinkArt(ctx, base, gallery.ID, art.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)

	storedGallery, err := GetGallery(ctx, st, gallery.ID)
	require.NoError(t, err)
	assert.Empty(t, storedGallery.Arts)
}

func TestLinkArtRetriesConflicts(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_, _, art, gallery := seed(t, mem)

	st := &flakyStore{Store: mem, conflicts: 2}
	rel := &Relations{Store: st, Attempts: 3}
	_, err := rel.LinkArt(ctx, base, gallery.ID, art.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, st.commits)

	st = &flakyStore{Store: mem, conflicts: 5}
	rel = &Relations{Store: st, Attempts: 3}
	err = rel.UnlinkArt(ctx, gallery.ID, art.ID)
	assert.ErrorIs(t, err, store.ErrConflict)
	assert.Equal(t, 3, st.commits)
}

func TestFriends(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	ana, bo, _, _ := seed(t, st)
	rel := &Relations{Store: st, Attempts: 3}

	_, err := rel.AddFriend(ctx, ana.ID, ana.ID)
	assert.ErrorIs(t, err, ErrSelfFriend)
	_, err = rel.AddFriend(ctx, ana.ID, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	user, err := rel.AddFriend(ctx, ana.ID, bo.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{bo.ID}, user.Friends)

	_, err = rel.AddFriend(ctx, ana.ID, bo.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriend)

	other, err := GetUser(ctx, st, bo.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Friends)

	assert.ErrorIs(t, rel.RemoveFriend(ctx, ana.ID, ana.ID), ErrSelfUnfriend)
	assert.ErrorIs(t, rel.RemoveFriend(ctx, bo.ID, ana.ID), ErrNotFriend)
	require.NoError(t, rel.RemoveFriend(ctx, ana.ID, bo.ID))

	user, err = GetUser(ctx, st, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, user.Friends)
}

func TestSymmetricFriends(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	ana, bo, _, _ := seed(t, st)
	rel := &Relations{Store: st, Attempts: 3, SymmetricFriends: true}

	_, err := rel.AddFriend(ctx, ana.ID, bo.ID)
	require.NoError(t, err)
	other, err := GetUser(ctx, st, bo.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{ana.ID}, other.Friends)

	require.NoError(t, rel.RemoveFriend(ctx, bo.ID, ana.ID))
	user, err := GetUser(ctx, st, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, user.Friends)
}

func TestRefreshTodayTimes(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	ana, bo, _, _ := seed(t, st)

	users, err := RefreshTodayTimes(ctx, st, 3, func() string { return "Sat, 03 Jan 2026 10:00:00 GMT" })
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, ana.ID, users[0].ID)
	assert.Equal(t, bo.ID, users[1].ID)

	stored, err := GetUser(ctx, st, bo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sat, 03 Jan 2026 10:00:00 GMT", stored.TodayTime)
	assert.Equal(t, "bo", stored.Name)
}

func TestTimeHelpers(t *testing.T) {
	now := time.Date(2026, 1, 9, 5, 12, 34, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "2026-01-09T04:12:34Z", ISOUTC(now))

	picked, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", RandomTimeOfDayGMT(now))
	require.NoError(t, err)
	assert.Equal(t, StartOfDayUTC(now), StartOfDayUTC(picked))
}

func TestUserToResponse(t *testing.T) {
	user := &schemas.User{Meta: schemas.Meta{ID: 4}, Friends: []int64{2, 3}}
	resp := UserToResponse(base, user)

	assert.Equal(t, base+"/users/4", resp.Self)
	assert.Equal(t, []schemas.UserRef{UserMini(base, 2), UserMini(base, 3)}, resp.Friends)
	assert.NotNil(t, resp.Arts)
	assert.NotNil(t, resp.Galleries)
}
