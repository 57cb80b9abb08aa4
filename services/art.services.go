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

// creator decodes the User reference of a create body. A non-empty problem
// is the 400 message.
func creator(body schemas.Body) (id int64, problem string) {
	if !body.IsObject("User") {
		return 0, "Bad Request: missing required fields."
	}

	ref := new(schemas.CreatorSchema)
	if err := global.JSON.Unmarshal(body["User"], ref); err != nil {
		return 0, "Bad Request: invalid User.U_ID."
	}
	if err := global.Validator.Struct(ref); err != nil {
		return 0, "Bad Request: missing required fields."
	}
	return *ref.ID, ""
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func boolOr(value *bool) bool {
	return value != nil && *value
}

func commentsOrEmpty(list []interface{}) []interface{} {
	if list == nil {
		return []interface{}{}
	}
	return list
}

// CreateArt creates an art owned by an existing user
func (s *Service) CreateArt(c *fiber.Ctx) error {
	body := middlewares.ParsedBody(c)
	userID, problem := creator(body)
	if problem != "" {
		return errors.HandleBadRequestError(c, problem)
	}

	req := new(schemas.CreateArtSchema)
	if err := global.JSON.Unmarshal(c.Body(), req); err != nil {
		return errors.HandleBadRequestError(c, messageInvalidFields)
	}

	ctx := c.UserContext()
	if _, err := helpers.GetUser(ctx, s.Store, userID); err != nil {
		return fail(c, "get_user", err)
	}

	user := helpers.UserMini(c.BaseURL(), userID)
	art := &schemas.Art{
		Image:        stringOr(req.Image, ""),
		Title:        stringOr(req.Title, ""),
		Comments:     commentsOrEmpty(req.Comments),
		ModifiedDate: helpers.ISOUTC(s.now()),
		Previous:     req.Previous,
		IsPublic:     boolOr(req.IsPublic),
		User:         &user,
		Galleries:    []schemas.GalleryRef{},
	}

	if err := helpers.Create(ctx, s.Store, art); err != nil {
		return fail(c, "create_art", err)
	}

	return c.Status(fiber.StatusCreated).JSON(helpers.ArtToResponse(c.BaseURL(), art))
}

// GetArt returns one art
func (s *Service) GetArt(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	art, err := helpers.GetArt(c.UserContext(), s.Store, id)
	if err != nil {
		return fail(c, "get_art", err)
	}

	return c.JSON(helpers.ArtToResponse(c.BaseURL(), art))
}

// GetArts lists art mini-refs
func (s *Service) GetArts(c *fiber.Ctx) error {
	offset, limit, ok := page(c)
	if !ok {
		return errors.HandleBadRequestError(c, messageBadPage)
	}

	arts, err := helpers.ListArts(c.UserContext(), s.Store, offset, limit)
	if err != nil {
		return fail(c, "list_arts", err)
	}

	return c.JSON(helpers.ArtsToMinis(c.BaseURL(), arts))
}

// GetArtGalleries lists the galleries an art is in
func (s *Service) GetArtGalleries(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	art, err := helpers.GetArt(c.UserContext(), s.Store, id)
	if err != nil {
		return fail(c, "get_art", err)
	}

	return c.JSON(helpers.ArtGalleriesResponse(art))
}

// DeleteArt removes an art; galleries keep their mini-ref to it
func (s *Service) DeleteArt(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	if err := s.Store.Delete(c.UserContext(), store.KindArt, id); err != nil {
		return fail(c, "delete_art", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func applyArt(art *schemas.Art, body schemas.Body, fields *schemas.ArtFieldsSchema) {
	if body.Has("A_Title") {
		art.Title = fields.Title
	}
	if body.Has("A_Image") {
		art.Image = fields.Image
	}
	if body.Has("A_Is_Public") {
		art.IsPublic = fields.IsPublic
	}
	if body.Has("A_Comments") {
		art.Comments = commentsOrEmpty(fields.Comments)
	}
}

// UpdateArt replaces (PUT) or patches (PATCH) the mutable art fields
func (s *Service) UpdateArt(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	ctx := c.UserContext()
	body := middlewares.ParsedBody(c)

	if _, err := helpers.GetArt(ctx, s.Store, id); err != nil {
		return fail(c, "get_art", err)
	}
	if body.HasAny(schemas.ArtImmutableFields...) {
		return fail(c, "update_art", errImmutable)
	}

	fields := new(schemas.ArtFieldsSchema)
	if err := global.JSON.Unmarshal(c.Body(), fields); err != nil {
		return fail(c, "update_art", errInvalidFields)
	}

	var art *schemas.Art
	err := helpers.Retry(s.Attempts, func() error {
		var err error
		if art, err = helpers.GetArt(ctx, s.Store, id); err != nil {
			return err
		}
		applyArt(art, body, fields)
		return helpers.Save(ctx, s.Store, art)
	})
	if err != nil {
		return fail(c, "update_art", err)
	}

	return c.JSON(helpers.ArtToResponse(c.BaseURL(), art))
}
