package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/kakao"
	"github.com/ita-growin/growin/internal/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	dateLayout      = "2006-01-02"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// domainError translates service sentinels into HTTP statuses. The mapping
// lives only at this boundary; services never see status codes.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidField), errors.Is(err, services.ErrInvalidDateRange):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEventNotFound), errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotOwner), errors.Is(err, services.ErrUserSuspended):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidRefreshToken), errors.Is(err, kakao.ErrInvalidAccessToken):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

type pageRequest struct {
	Page   int
	Size   int
	Offset int
}

func parsePageRequest(c *fiber.Ctx) pageRequest {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return pageRequest{Page: page, Size: size, Offset: (page - 1) * size}
}

func pagedJSON(c *fiber.Ctx, items any, total int64, page pageRequest) error {
	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
		"page":  page.Page,
	})
}

func parseDateField(value *string, location *time.Location) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(*value), location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDateField(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
