package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/services"
)

func (handler *Handler) GetMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildUserResponse(*user))
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload profilePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.authService.UpdateProfile(user.ID, services.ProfileUpdateInput{
		Nickname:      payload.Nickname,
		Work:          payload.Work,
		InterestField: payload.InterestField,
		Target:        payload.Target,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(buildUserResponse(updated))
}

func (handler *Handler) Withdraw(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.authService.Withdraw(user.ID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
