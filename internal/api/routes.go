package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/kakao/signup", handler.KakaoSignup)
	auth.Post("/kakao/login", handler.KakaoLogin)
	auth.Post("/refresh", handler.RefreshToken)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	users := v1.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.GetMe)
	users.Patch("/me", handler.UpdateMe)
	users.Delete("/me", handler.Withdraw)

	events := v1.Group("/events", handler.AuthRequired)
	events.Post("", handler.CreateEvent)
	events.Get("", handler.ListEvents)
	events.Get("/:eventId", handler.GetEvent)
	events.Patch("/:eventId", handler.UpdateEvent)
	events.Delete("/:eventId", handler.DeleteEvent)
	events.Get("/:eventId/tasks", handler.ListEventTasks)

	tasks := v1.Group("/tasks", handler.AuthRequired)
	tasks.Post("", handler.CreateTask)
	tasks.Get("/today", handler.ListTodayTasks)
	tasks.Get("/someday", handler.ListSomedayTasks)
	tasks.Get("/:taskId", handler.GetTask)
	tasks.Patch("/:taskId", handler.UpdateTask)
	tasks.Delete("/:taskId", handler.DeleteTask)
}
