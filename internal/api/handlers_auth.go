package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/kakao"
	"github.com/ita-growin/growin/internal/models"
	"github.com/ita-growin/growin/internal/services"
)

func (handler *Handler) KakaoSignup(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.authLimiter.blocked(limiterKey, time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	var payload kakaoSignupPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, refreshToken, err := handler.authService.KakaoSignup(c.Context(), services.SignupInput{
		AccessToken:   payload.AccessToken,
		Work:          payload.Work,
		InterestField: payload.InterestField,
		Target:        payload.Target,
		DeviceToken:   payload.DeviceToken,
	})
	if err != nil {
		handler.recordAuthFailure(limiterKey, err)
		return domainError(c, err)
	}

	return handler.sendAuthResponse(c, fiber.StatusCreated, user, refreshToken)
}

func (handler *Handler) KakaoLogin(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.authLimiter.blocked(limiterKey, time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	var payload kakaoLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, refreshToken, err := handler.authService.KakaoLogin(c.Context(), payload.AccessToken, payload.DeviceToken)
	if err != nil {
		handler.recordAuthFailure(limiterKey, err)
		return domainError(c, err)
	}

	return handler.sendAuthResponse(c, fiber.StatusOK, user, refreshToken)
}

func (handler *Handler) RefreshToken(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.authLimiter.blocked(limiterKey, time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	var payload refreshPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, refreshToken, err := handler.authService.Refresh(payload.RefreshToken)
	if err != nil {
		handler.recordAuthFailure(limiterKey, err)
		return domainError(c, err)
	}
	handler.authLimiter.reset(limiterKey)

	return handler.sendAuthResponse(c, fiber.StatusOK, user, refreshToken)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.authService.Logout(user.ID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// recordAuthFailure counts only credential failures against the limiter;
// validation and conflict errors are not guessing attempts.
func (handler *Handler) recordAuthFailure(limiterKey string, err error) {
	if errors.Is(err, kakao.ErrInvalidAccessToken) || errors.Is(err, services.ErrInvalidRefreshToken) {
		handler.authLimiter.recordFailure(limiterKey, time.Now())
	}
}

func (handler *Handler) sendAuthResponse(c *fiber.Ctx, status int, user models.User, refreshToken string) error {
	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue access token")
	}

	return c.Status(status).JSON(authResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserResponse(user),
	})
}
