package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/services"
)

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseTaskInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.taskService.CreateTask(user.ID, input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildTaskResponse(task))
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseUintParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	input, err := handler.parseTaskInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.taskService.UpdateTask(user.ID, taskID, input)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(buildTaskResponse(task))
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseUintParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.taskService.DeleteTask(user.ID, taskID); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := parseUintParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := handler.taskService.GetTask(user.ID, taskID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(buildTaskResponse(task))
}

func (handler *Handler) ListTodayTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	page := parsePageRequest(c)

	today := services.DateAtLocation(time.Now(), handler.location)
	tasks, total, err := handler.taskService.ListTodayTasks(user.ID, today, page.Offset, page.Size)
	if err != nil {
		return domainError(c, err)
	}
	return pagedJSON(c, buildTaskResponses(tasks), total, page)
}

func (handler *Handler) ListSomedayTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	page := parsePageRequest(c)

	tasks, total, err := handler.taskService.ListSomedayTasks(user.ID, page.Offset, page.Size)
	if err != nil {
		return domainError(c, err)
	}
	return pagedJSON(c, buildTaskResponses(tasks), total, page)
}

func (handler *Handler) parseTaskInput(c *fiber.Ctx) (services.TaskInput, error) {
	var payload taskPayload
	if err := c.BodyParser(&payload); err != nil {
		return services.TaskInput{}, err
	}

	startDate, err := parseDateField(payload.StartDate, handler.location)
	if err != nil {
		return services.TaskInput{}, err
	}
	endDate, err := parseDateField(payload.EndDate, handler.location)
	if err != nil {
		return services.TaskInput{}, err
	}

	return services.TaskInput{
		Title:      payload.Title,
		Type:       payload.Type,
		EventID:    payload.EventID,
		RepeatType: payload.RepeatType,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}
