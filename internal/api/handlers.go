package api

import (
	"time"

	"github.com/ita-growin/growin/internal/db"
	"github.com/ita-growin/growin/internal/kakao"
	"github.com/ita-growin/growin/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	secretKey      []byte
	location       *time.Location
	accessTokenTTL time.Duration

	repositories *db.Repositories
	authService  *services.AuthService
	eventService *services.EventService
	taskService  *services.TaskService

	authLimiter *attemptLimiter
}

func NewHandler(
	database *gorm.DB,
	secret string,
	location *time.Location,
	accessTokenTTL time.Duration,
	refreshTokenTTL time.Duration,
	kakaoClient kakao.Client,
) *Handler {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:             database,
		secretKey:      []byte(secret),
		location:       location,
		accessTokenTTL: accessTokenTTL,
		repositories:   repositories,
		authService:    services.NewAuthService(repositories.Users, kakaoClient, refreshTokenTTL),
		eventService:   services.NewEventService(repositories.Events),
		taskService:    services.NewTaskService(repositories.Tasks, repositories.Events),
		authLimiter:    newAttemptLimiter(),
	}
}
