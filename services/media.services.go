package services

import (
	"context"

	"BEARSTY_server/errors"
	"BEARSTY_server/helpers"
	"BEARSTY_server/media"

	"github.com/gofiber/fiber/v2"
)

// upload validates an image body, stores it and attaches its URL to the
// entity; attach loads, mutates, saves and renders the entity
func (s *Service) upload(c *fiber.Ctx, folder string, exists func(ctx context.Context, id int64) error, attach func(ctx context.Context, id int64, url string) (interface{}, error)) error {
	contentType := c.Get(fiber.HeaderContentType)
	if _, ok := media.ImageExtension(contentType); !ok {
		return errors.HandleUnsupportedMediaError(c, "Content-Type must be image/png, image/jpeg, image/gif or image/webp.")
	}

	data := c.Body()
	if len(data) == 0 {
		return errors.HandleBadRequestError(c, "Bad Request: image body required.")
	}
	if s.MaxUploadBytes > 0 && len(data) > s.MaxUploadBytes {
		return errors.HandleTooLargeError(c, s.MaxUploadBytes)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	ctx := c.UserContext()
	if err := exists(ctx, id); err != nil {
		return fail(c, "upload_"+folder, err)
	}

	url, err := s.Media.Put(ctx, folder, id, contentType, append([]byte(nil), data...))
	if err != nil {
		return errors.HandleInternalError(c, "minio_put", err.Error())
	}

	var resp interface{}
	err = helpers.Retry(s.Attempts, func() error {
		var err error
		resp, err = attach(ctx, id, url)
		return err
	})
	if err != nil {
		return fail(c, "upload_"+folder, err)
	}

	return c.JSON(resp)
}

// UploadArtImage stores the body as the art's A_Image
func (s *Service) UploadArtImage(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return s.upload(c, "arts",
		func(ctx context.Context, id int64) error {
			_, err := helpers.GetArt(ctx, s.Store, id)
			return err
		},
		func(ctx context.Context, id int64, url string) (interface{}, error) {
			art, err := helpers.GetArt(ctx, s.Store, id)
			if err != nil {
				return nil, err
			}
			art.Image = url
			art.ModifiedDate = helpers.ISOUTC(s.now())
			if err := helpers.Save(ctx, s.Store, art); err != nil {
				return nil, err
			}
			return helpers.ArtToResponse(baseURL, art), nil
		})
}

// UploadGalleryProfile stores the body as the gallery's G_Profile
func (s *Service) UploadGalleryProfile(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return s.upload(c, "galleries",
		func(ctx context.Context, id int64) error {
			_, err := helpers.GetGallery(ctx, s.Store, id)
			return err
		},
		func(ctx context.Context, id int64, url string) (interface{}, error) {
			gallery, err := helpers.GetGallery(ctx, s.Store, id)
			if err != nil {
				return nil, err
			}
			gallery.Profile = url
			if err := helpers.Save(ctx, s.Store, gallery); err != nil {
				return nil, err
			}
			return helpers.GalleryToResponse(baseURL, gallery), nil
		})
}

// UploadUserProfile stores the body as the user's U_Profile
func (s *Service) UploadUserProfile(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return s.upload(c, "users",
		func(ctx context.Context, id int64) error {
			_, err := helpers.GetUser(ctx, s.Store, id)
			return err
		},
		func(ctx context.Context, id int64, url string) (interface{}, error) {
			user, err := helpers.GetUser(ctx, s.Store, id)
			if err != nil {
				return nil, err
			}
			user.Profile = url
			if err := helpers.Save(ctx, s.Store, user); err != nil {
				return nil, err
			}
			return helpers.UserToResponse(baseURL, user), nil
		})
}
