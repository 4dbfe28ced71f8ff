package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/services"
)

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseEventInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	summary, err := handler.eventService.CreateEvent(user.ID, input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	input, err := handler.parseEventInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	summary, err := handler.eventService.UpdateEvent(user.ID, eventID, input)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	if err := handler.eventService.DeleteEvent(user.ID, eventID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := handler.eventService.GetEventDetail(user.ID, eventID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(buildEventResponse(event))
}

// ListEvents serves the calendar views: `year`+`month` for the month grid,
// `date` for a single day.
func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	page := parsePageRequest(c)

	if rawDate := c.Query("date"); rawDate != "" {
		date, err := time.ParseInLocation(dateLayout, rawDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		events, total, err := handler.eventService.ListEventsByDate(user.ID, date, page.Offset, page.Size)
		if err != nil {
			return domainError(c, err)
		}
		return pagedJSON(c, buildEventResponses(events), total, page)
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	events, total, err := handler.eventService.ListEventsByMonth(user.ID, year, month, page.Offset, page.Size)
	if err != nil {
		return domainError(c, err)
	}
	return pagedJSON(c, buildEventResponses(events), total, page)
}

func (handler *Handler) ListEventTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}
	page := parsePageRequest(c)

	tasks, total, err := handler.taskService.ListEventTasks(user.ID, eventID, page.Offset, page.Size)
	if err != nil {
		return domainError(c, err)
	}
	return pagedJSON(c, buildTaskResponses(tasks), total, page)
}

func (handler *Handler) parseEventInput(c *fiber.Ctx) (services.EventInput, error) {
	var payload eventPayload
	if err := c.BodyParser(&payload); err != nil {
		return services.EventInput{}, err
	}

	startDate, err := parseDateField(payload.StartDate, handler.location)
	if err != nil {
		return services.EventInput{}, err
	}
	endDate, err := parseDateField(payload.EndDate, handler.location)
	if err != nil {
		return services.EventInput{}, err
	}
	repeatEndDate, err := parseDateField(payload.RepeatEndDate, handler.location)
	if err != nil {
		return services.EventInput{}, err
	}

	return services.EventInput{
		Title:         payload.Title,
		AllDay:        payload.AllDay,
		StartDate:     startDate,
		EndDate:       endDate,
		StartDay:      payload.StartDay,
		EndDay:        payload.EndDay,
		StartTime:     payload.StartTime,
		EndTime:       payload.EndTime,
		RepeatType:    payload.RepeatType,
		RepeatCount:   payload.RepeatCount,
		RepeatEndDate: repeatEndDate,
	}, nil
}
