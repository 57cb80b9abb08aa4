package helpers

import (
	"context"
	Errors "errors"

	"BEARSTY_server/schemas"
	"BEARSTY_server/store"
)

// Forbidden relation changes; the message is the client facing text
var (
	ErrAlreadyLinked = Errors.New("The art is already in the gallery")
	ErrNotLinked     = Errors.New("The art is not in the gallery")
	ErrSelfFriend    = Errors.New("You cannot add yourself as a friend")
	ErrSelfUnfriend  = Errors.New("You cannot remove yourself as a friend")
	ErrAlreadyFriend = Errors.New("The user is already a friend")
	ErrNotFriend     = Errors.New("The user is not a friend")
)

// IsForbidden reports whether err is one of the forbidden relation errors
func IsForbidden(err error) bool {
	for _, target := range []error{ErrAlreadyLinked, ErrNotLinked, ErrSelfFriend, ErrSelfUnfriend, ErrAlreadyFriend, ErrNotFriend} {
		if Errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Relations keeps mirrored references consistent. Each operation loads both
// sides, checks the current relation state and commits both records in one
// Store.Commit, rerunning everything when a concurrent write wins the race.
type Relations struct {
	Store            store.Store
	Attempts         int
	SymmetricFriends bool
}

// LinkArt adds the art to the gallery and the gallery to the art
func (r *Relations) LinkArt(ctx context.Context, baseURL string, galleryID int64, artID int64) (*schemas.Gallery, error) {
	var gallery *schemas.Gallery
	err := Retry(r.Attempts, func() error {
		var art *schemas.Art
		var err error
		if gallery, err = GetGallery(ctx, r.Store, galleryID); err != nil {
			return err
		}
		if art, err = GetArt(ctx, r.Store, artID); err != nil {
			return err
		}

		if gallery.HasArt(artID) {
			return ErrAlreadyLinked
		}

		gallery.Arts = append(gallery.Arts, ArtMini(baseURL, artID))
		if !art.InGallery(galleryID) {
			art.Galleries = append(art.Galleries, GalleryMini(baseURL, galleryID))
		}

		return Save(ctx, r.Store, gallery, art)
	})
	if err != nil {
		return nil, err
	}
	return gallery, nil
}

// UnlinkArt removes the art from the gallery and the gallery from the art
func (r *Relations) UnlinkArt(ctx context.Context, galleryID int64, artID int64) error {
	return Retry(r.Attempts, func() error {
		gallery, err := GetGallery(ctx, r.Store, galleryID)
		if err != nil {
			return err
		}
		art, err := GetArt(ctx, r.Store, artID)
		if err != nil {
			return err
		}

		if !gallery.HasArt(artID) {
			return ErrNotLinked
		}

		gallery.RemoveArt(artID)
		art.RemoveGallery(galleryID)

		return Save(ctx, r.Store, gallery, art)
	})
}

// AddFriend records friendID on userID; with SymmetricFriends the reverse
// entry is written in the same commit
func (r *Relations) AddFriend(ctx context.Context, userID int64, friendID int64) (*schemas.User, error) {
	if userID == friendID {
		return nil, ErrSelfFriend
	}

	var user *schemas.User
	err := Retry(r.Attempts, func() error {
		var friend *schemas.User
		var err error
		if user, err = GetUser(ctx, r.Store, userID); err != nil {
			return err
		}
		if friend, err = GetUser(ctx, r.Store, friendID); err != nil {
			return err
		}

		if user.HasFriend(friendID) {
			return ErrAlreadyFriend
		}

		user.AddFriend(friendID)
		if !r.SymmetricFriends {
			return Save(ctx, r.Store, user)
		}
		friend.AddFriend(userID)
		return Save(ctx, r.Store, user, friend)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveFriend drops friendID from userID; with SymmetricFriends the reverse
// entry is dropped in the same commit
func (r *Relations) RemoveFriend(ctx context.Context, userID int64, friendID int64) error {
	if userID == friendID {
		return ErrSelfUnfriend
	}

	return Retry(r.Attempts, func() error {
		user, err := GetUser(ctx, r.Store, userID)
		if err != nil {
			return err
		}
		friend, err := GetUser(ctx, r.Store, friendID)
		if err != nil {
			return err
		}

		if !user.HasFriend(friendID) {
			return ErrNotFriend
		}

		user.RemoveFriend(friendID)
		if !r.SymmetricFriends {
			return Save(ctx, r.Store, user)
		}
		friend.RemoveFriend(userID)
		return Save(ctx, r.Store, user, friend)
	})
}

// RefreshTodayTimes gives every user a new random Today_Time of the current
// day and returns the users in creation order
func RefreshTodayTimes(ctx context.Context, st store.Store, attempts int, pick func() string) ([]*schemas.User, error) {
	users, err := ListUsers(ctx, st, 0, -1)
	if err != nil {
		return nil, err
	}

	refreshed := make([]*schemas.User, 0, len(users))
	for _, listed := range users {
		id := listed.ID
		var user *schemas.User
		err := Retry(attempts, func() error {
			var err error
			if user, err = GetUser(ctx, st, id); err != nil {
				return err
			}
			user.TodayTime = pick()
			return Save(ctx, st, user)
		})
		if Errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		refreshed = append(refreshed, user)
	}
	return refreshed, nil
}
