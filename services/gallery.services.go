package services

import (
	"BEARSTY_server/errors"
	"BEARSTY_server/global"
	"BEARSTY_server/helpers"
	"BEARSTY_server/middlewares"
	"BEARSTY_server/schemas"
	"BEARSTY_server/store"

	"github.com/gofiber/fiber/v2"
)

const defaultGalleryName = "Untitled"

// CreateGallery creates a gallery owned by an existing user
func (s *Service) CreateGallery(c *fiber.Ctx) error {
	body := middlewares.ParsedBody(c)
	userID, problem := creator(body)
	if problem != "" {
		return errors.HandleBadRequestError(c, problem)
	}

	req := new(schemas.CreateGallerySchema)
	if err := global.JSON.Unmarshal(c.Body(), req); err != nil {
		return errors.HandleBadRequestError(c, messageInvalidFields)
	}

	ctx := c.UserContext()
	if _, err := helpers.GetUser(ctx, s.Store, userID); err != nil {
		return fail(c, "get_user", err)
	}

	user := helpers.UserMini(c.BaseURL(), userID)
	gallery := &schemas.Gallery{
		Arts:         []schemas.ArtRef{},
		User:         &user,
		Name:         stringOr(req.Name, defaultGalleryName),
		CreationDate: helpers.ISOUTC(s.now()),
		Comments:     commentsOrEmpty(req.Comments),
		Profile:      stringOr(req.Profile, ""),
		IsPublic:     boolOr(req.IsPublic),
	}

	if err := helpers.Create(ctx, s.Store, gallery); err != nil {
		return fail(c, "create_gallery", err)
	}

	return c.Status(fiber.StatusCreated).JSON(helpers.GalleryToResponse(c.BaseURL(), gallery))
}

// GetGallery returns one gallery
func (s *Service) GetGallery(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	gallery, err := helpers.GetGallery(c.UserContext(), s.Store, id)
	if err != nil {
		return fail(c, "get_gallery", err)
	}

	return c.JSON(helpers.GalleryToResponse(c.BaseURL(), gallery))
}

// GetGalleries lists gallery mini-refs
func (s *Service) GetGalleries(c *fiber.Ctx) error {
	offset, limit, ok := page(c)
	if !ok {
		return errors.HandleBadRequestError(c, messageBadPage)
	}

	galleries, err := helpers.ListGalleries(c.UserContext(), s.Store, offset, limit)
	if err != nil {
		return fail(c, "list_galleries", err)
	}

	return c.JSON(helpers.GalleriesToMinis(c.BaseURL(), galleries))
}

// GetGalleryArts lists the arts in a gallery
func (s *Service) GetGalleryArts(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	gallery, err := helpers.GetGallery(c.UserContext(), s.Store, id)
	if err != nil {
		return fail(c, "get_gallery", err)
	}

	return c.JSON(helpers.GalleryArtsResponse(gallery))
}

// DeleteGallery removes a gallery; arts keep their mini-ref to it
func (s *Service) DeleteGallery(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	if err := s.Store.Delete(c.UserContext(), store.KindGallery, id); err != nil {
		return fail(c, "delete_gallery", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func applyGallery(gallery *schemas.Gallery, body schemas.Body, fields *schemas.GalleryFieldsSchema) {
	if body.Has("G_Name") {
		gallery.Name = fields.Name
	}
	if body.Has("G_Is_Public") {
		gallery.IsPublic = fields.IsPublic
	}
	if body.Has("G_Comments") {
		gallery.Comments = commentsOrEmpty(fields.Comments)
	}
}

// UpdateGallery replaces (PUT) or patches (PATCH) the mutable gallery fields
func (s *Service) UpdateGallery(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	ctx := c.UserContext()
	body := middlewares.ParsedBody(c)

	if _, err := helpers.GetGallery(ctx, s.Store, id); err != nil {
		return fail(c, "get_gallery", err)
	}
	if body.HasAny(schemas.GalleryImmutableFields...) {
		return fail(c, "update_gallery", errImmutable)
	}

	fields := new(schemas.GalleryFieldsSchema)
	if err := global.JSON.Unmarshal(c.Body(), fields); err != nil {
		return fail(c, "update_gallery", errInvalidFields)
	}

	var gallery *schemas.Gallery
	err := helpers.Retry(s.Attempts, func() error {
		var err error
		if gallery, err = helpers.GetGallery(ctx, s.Store, id); err != nil {
			return err
		}
		applyGallery(gallery, body, fields)
		return helpers.Save(ctx, s.Store, gallery)
	})
	if err != nil {
		return fail(c, "update_gallery", err)
	}

	return c.JSON(helpers.GalleryToResponse(c.BaseURL(), gallery))
}
