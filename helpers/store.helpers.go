package helpers

import (
	"context"
	Errors "errors"
	"fmt"

	"BEARSTY_server/global"
	"BEARSTY_server/schemas"
	"BEARSTY_server/store"
)

// Document is a stored User, Art or Gallery
type Document interface {
	Header() *schemas.Meta
}

// KindOf returns the store kind of a document
func KindOf(doc Document) store.Kind {
	switch doc.(type) {
	case *schemas.User:
		return store.KindUser
	case *schemas.Art:
		return store.KindArt
	case *schemas.Gallery:
		return store.KindGallery
	}
	panic(fmt.Sprintf("helpers: no kind for %T", doc))
}

func decode(rec *store.Record, doc Document) error {
	if err := global.JSON.Unmarshal(rec.Data, doc); err != nil {
		return fmt.Errorf("decode %s %d: %w", rec.Kind, rec.ID, err)
	}
	meta := doc.Header()
	meta.ID = rec.ID
	meta.Version = rec.Version
	return nil
}

func encode(doc Document) (*store.Record, error) {
	data, err := global.JSON.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s %d: %w", KindOf(doc), doc.Header().ID, err)
	}
	meta := doc.Header()
	return &store.Record{Kind: KindOf(doc), ID: meta.ID, Version: meta.Version, Data: data}, nil
}

// Load reads the document with id into doc
func Load(ctx context.Context, st store.Store, id int64, doc Document) error {
	rec, err := st.Get(ctx, KindOf(doc), id)
	if err != nil {
		return err
	}
	return decode(rec, doc)
}

// Create inserts doc and assigns its id and version
func Create(ctx context.Context, st store.Store, doc Document) error {
	data, err := global.JSON.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KindOf(doc), err)
	}
	rec, err := st.Insert(ctx, KindOf(doc), data)
	if err != nil {
		return err
	}
	meta := doc.Header()
	meta.ID = rec.ID
	meta.Version = rec.Version
	return nil
}

// Save commits every document as one version-guarded unit.
// On success each document carries its new version.
func Save(ctx context.Context, st store.Store, docs ...Document) error {
	recs := make([]*store.Record, len(docs))
	for i, doc := range docs {
		rec, err := encode(doc)
		if err != nil {
			return err
		}
		recs[i] = rec
	}

	if err := st.Commit(ctx, recs...); err != nil {
		return err
	}

	for i, doc := range docs {
		doc.Header().Version = recs[i].Version
	}
	return nil
}

// Retry runs fn up to attempts times while it fails with store.ErrConflict.
// fn must reload whatever it writes.
func Retry(attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if !Errors.Is(err, store.ErrConflict) {
			return err
		}
	}
	return err
}

// GetUser loads a user
func GetUser(ctx context.Context, st store.Store, id int64) (*schemas.User, error) {
	user := new(schemas.User)
	if err := Load(ctx, st, id, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetArt loads an art
func GetArt(ctx context.Context, st store.Store, id int64) (*schemas.Art, error) {
	art := new(schemas.Art)
	if err := Load(ctx, st, id, art); err != nil {
		return nil, err
	}
	return art, nil
}

// GetGallery loads a gallery
func GetGallery(ctx context.Context, st store.Store, id int64) (*schemas.Gallery, error) {
	gallery := new(schemas.Gallery)
	if err := Load(ctx, st, id, gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

// ListUsers returns users in creation order; a negative limit means all
func ListUsers(ctx context.Context, st store.Store, offset int, limit int) ([]*schemas.User, error) {
	recs, err := st.List(ctx, store.KindUser, offset, limit)
	if err != nil {
		return nil, err
	}
	users := make([]*schemas.User, len(recs))
	for i, rec := range recs {
		users[i] = new(schemas.User)
		if err := decode(rec, users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// ListArts returns arts in creation order; a negative limit means all
func ListArts(ctx context.Context, st store.Store, offset int, limit int) ([]*schemas.Art, error) {
	recs, err := st.List(ctx, store.KindArt, offset, limit)
	if err != nil {
		return nil, err
	}
	arts := make([]*schemas.Art, len(recs))
	for i, rec := range recs {
		arts[i] = new(schemas.Art)
		if err := decode(rec, arts[i]); err != nil {
			return nil, err
		}
	}
	return arts, nil
}

// ListGalleries returns galleries in creation order; a negative limit means all
func ListGalleries(ctx context.Context, st store.Store, offset int, limit int) ([]*schemas.Gallery, error) {
	recs, err := st.List(ctx, store.KindGallery, offset, limit)
	if err != nil {
		return nil, err
	}
	galleries := make([]*schemas.Gallery, len(recs))
	for i, rec := range recs {
		galleries[i] = new(schemas.Gallery)
		if err := decode(rec, galleries[i]); err != nil {
			return nil, err
		}
	}
	return galleries, nil
}
