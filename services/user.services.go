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

const defaultProfile = "Image Path/File"

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// CreateUser creates a user from identity claims
func (s *Service) CreateUser(c *fiber.Ctx) error {
	body := middlewares.ParsedBody(c)
	if !body.IsObject("userinfo") {
		return errors.HandleBadRequestError(c, "The request object is missing the required userinfo attribute")
	}

	req := new(schemas.CreateUserSchema)
	if err := global.JSON.Unmarshal(c.Body(), req); err != nil {
		return errors.HandleBadRequestError(c, messageInvalidFields)
	}
	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	now := s.now()
	user := &schemas.User{
		Name:            firstNonEmpty(req.UserInfo.Email, req.UserInfo.Name),
		AuthSub:         req.UserInfo.Sub,
		Profile:         firstNonEmpty(req.UserInfo.Picture, defaultProfile),
		Arts:            []schemas.ArtRef{},
		Galleries:       []schemas.GalleryRef{},
		Friends:         []int64{},
		PixelAmount:     10,
		TimeLength:      10,
		IsCustomTime:    false,
		CustomTimeAlarm: helpers.RandomTimeOfDayGMT(now),
		TodayTime:       helpers.RandomTimeOfDayGMT(now),
	}

	if err := helpers.Create(c.UserContext(), s.Store, user); err != nil {
		return fail(c, "create_user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(helpers.UserToResponse(c.BaseURL(), user))
}

// GetUser returns one user
func (s *Service) GetUser(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	user, err := helpers.GetUser(c.UserContext(), s.Store, id)
	if err != nil {
		return fail(c, "get_user", err)
	}

	return c.JSON(helpers.UserToResponse(c.BaseURL(), user))
}

// GetUsers lists user mini-refs
func (s *Service) GetUsers(c *fiber.Ctx) error {
	offset, limit, ok := page(c)
	if !ok {
		return errors.HandleBadRequestError(c, messageBadPage)
	}

	users, err := helpers.ListUsers(c.UserContext(), s.Store, offset, limit)
	if err != nil {
		return fail(c, "list_users", err)
	}

	return c.JSON(helpers.UsersToMinis(c.BaseURL(), users))
}

// DeleteUser removes a user
func (s *Service) DeleteUser(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	if err := s.Store.Delete(c.UserContext(), store.KindUser, id); err != nil {
		return fail(c, "delete_user", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RefreshUsers gives every user a new Today_Time (the daily job)
func (s *Service) RefreshUsers(c *fiber.Ctx) error {
	body := middlewares.ParsedBody(c)

	var method string
	if err := global.JSON.Unmarshal(body["request_method"], &method); err != nil || method != "automatically" {
		return errors.HandleBadRequestError(c, "BadRequest:Should not be triggered manually")
	}

	users, err := helpers.RefreshTodayTimes(c.UserContext(), s.Store, s.Attempts, func() string {
		return helpers.RandomTimeOfDayGMT(s.now())
	})
	if err != nil {
		return fail(c, "refresh_users", err)
	}

	if len(users) == 0 {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(helpers.UserToResponse(c.BaseURL(), users[0]))
}

func applyUser(user *schemas.User, fields *schemas.UserFieldsSchema) {
	if fields.Name != nil {
		user.Name = *fields.Name
	}
	if fields.Profile != nil {
		user.Profile = *fields.Profile
	}
	if fields.PixelAmount != nil {
		user.PixelAmount = *fields.PixelAmount
	}
	if fields.TimeLength != nil {
		user.TimeLength = *fields.TimeLength
	}
	if fields.IsCustomTime != nil {
		user.IsCustomTime = *fields.IsCustomTime
	}
	if fields.CustomTimeAlarm != nil {
		user.CustomTimeAlarm = *fields.CustomTimeAlarm
	}
}

// UpdateUser replaces (PUT) or patches (PATCH) the mutable user fields
func (s *Service) UpdateUser(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	ctx := c.UserContext()
	body := middlewares.ParsedBody(c)

	if _, err := helpers.GetUser(ctx, s.Store, id); err != nil {
		return fail(c, "get_user", err)
	}
	if body.HasAny(schemas.UserImmutableFields...) {
		return fail(c, "update_user", errImmutable)
	}
	if body.HasNull(schemas.UserMutableFields...) {
		return fail(c, "update_user", errInvalidFields)
	}

	fields := new(schemas.UserFieldsSchema)
	if err := global.JSON.Unmarshal(c.Body(), fields); err != nil {
		return fail(c, "update_user", errInvalidFields)
	}
	if err := global.Validator.Struct(fields); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	var user *schemas.User
	err := helpers.Retry(s.Attempts, func() error {
		var err error
		if user, err = helpers.GetUser(ctx, s.Store, id); err != nil {
			return err
		}
		applyUser(user, fields)
		return helpers.Save(ctx, s.Store, user)
	})
	if err != nil {
		return fail(c, "update_user", err)
	}

	return c.JSON(helpers.UserToResponse(c.BaseURL(), user))
}
