package services

import (
	"BEARSTY_server/errors"
	"BEARSTY_server/helpers"

	"github.com/gofiber/fiber/v2"
)

// LinkArt puts an art into a gallery
func (s *Service) LinkArt(c *fiber.Ctx) error {
	galleryID, ok := pathID(c, "galleryID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	artID, ok := pathID(c, "artID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	gallery, err := s.Relations.LinkArt(c.UserContext(), c.BaseURL(), galleryID, artID)
	if err != nil {
		return fail(c, "link_art", err)
	}

	return c.JSON(helpers.GalleryToResponse(c.BaseURL(), gallery))
}

// UnlinkArt takes an art out of a gallery
func (s *Service) UnlinkArt(c *fiber.Ctx) error {
	galleryID, ok := pathID(c, "galleryID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	artID, ok := pathID(c, "artID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	if err := s.Relations.UnlinkArt(c.UserContext(), galleryID, artID); err != nil {
		return fail(c, "unlink_art", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddFriend adds the second user to the first user's friends
func (s *Service) AddFriend(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	friendID, ok := pathID(c, "friendID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	user, err := s.Relations.AddFriend(c.UserContext(), userID, friendID)
	if err != nil {
		return fail(c, "add_friend", err)
	}

	return c.JSON(helpers.UserToResponse(c.BaseURL(), user))
}

// RemoveFriend removes the second user from the first user's friends
func (s *Service) RemoveFriend(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}
	friendID, ok := pathID(c, "friendID")
	if !ok {
		return errors.HandleNotFoundError(c)
	}

	if err := s.Relations.RemoveFriend(c.UserContext(), userID, friendID); err != nil {
		return fail(c, "remove_friend", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
