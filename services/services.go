package services

import (
	"context"
	Errors "errors"
	"strconv"
	"time"

	"BEARSTY_server/config"
	"BEARSTY_server/errors"
	"BEARSTY_server/helpers"
	"BEARSTY_server/store"

	"github.com/gofiber/fiber/v2"
)

// MediaUploader stores an uploaded image and returns its URL
type MediaUploader interface {
	Put(ctx context.Context, folder string, id int64, contentType string, data []byte) (string, error)
}

// Service holds the dependencies of every handler
type Service struct {
	Store          store.Store
	Media          MediaUploader
	Relations      *helpers.Relations
	Attempts       int
	MaxUploadBytes int
	Now            func() time.Time
}

// New builds the handlers over st; media may be nil when uploads are disabled
func New(st store.Store, media MediaUploader, cfg config.JSONConfig) *Service {
	return &Service{
		Store: st,
		Media: media,
		Relations: &helpers.Relations{
			Store:            st,
			Attempts:         cfg.Relations.CommitAttempts,
			SymmetricFriends: cfg.Relations.SymmetricFriends,
		},
		Attempts:       cfg.Relations.CommitAttempts,
		MaxUploadBytes: cfg.MinIO.MaxUploadBytes,
		Now:            time.Now,
	}
}

const (
	messageImmutable     = "Bad Request"
	messageInvalidFields = "Bad Request: invalid field types."
	messageBadPage       = "Bad Request: limit/offset must be non-negative."
)

var (
	errImmutable     = Errors.New(messageImmutable)
	errInvalidFields = Errors.New(messageInvalidFields)
)

// fail maps repository errors onto responses
func fail(c *fiber.Ctx, problem string, err error) error {
	switch {
	case Errors.Is(err, store.ErrNotFound):
		return errors.HandleNotFoundError(c)
	case helpers.IsForbidden(err):
		return errors.HandleForbiddenError(c, err.Error())
	case Errors.Is(err, store.ErrConflict):
		return errors.HandleConflictError(c, problem)
	case Errors.Is(err, errImmutable), Errors.Is(err, errInvalidFields):
		return errors.HandleBadRequestError(c, err.Error())
	}
	return errors.HandleInternalError(c, problem, err.Error())
}

// pathID reads a positive integer route parameter
func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// page reads offset and limit; an absent limit is -1 (everything)
func page(c *fiber.Ctx) (offset int, limit int, ok bool) {
	limit = -1
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}
	return offset, limit, true
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
