package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ita-growin/growin/internal/api"
	"github.com/ita-growin/growin/internal/config"
	"github.com/ita-growin/growin/internal/db"
	"github.com/ita-growin/growin/internal/kakao"
	"github.com/ita-growin/growin/internal/logging"
	"github.com/ita-growin/growin/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg := mustLoadConfig(configPath)

	log := logging.New(cfg.Log.Level, cfg.Log.Pretty)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn().Str("timezone", cfg.Timezone).Msg("invalid timezone, falling back to UTC")
		location = time.UTC
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	kakaoClient := kakao.NewClient(cfg.Kakao.UserInfoURL)
	handler := api.NewHandler(
		database,
		cfg.Auth.SecretKey,
		location,
		cfg.AccessTokenTTL(),
		cfg.RefreshTokenTTL(),
		kakaoClient,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Growin",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	if cfg.Reminder.Enabled {
		if err := startReminderSweep(lifecycleCtx, database, location, cfg.Reminder.Cron, log); err != nil {
			log.Fatal().Err(err).Msg("reminder sweep init failed")
		}
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("listen", cfg.Listen).
		Str("db", cfg.Database.Path).
		Str("tz", location.String()).
		Msg("growin listening")
	if err := app.Listen(cfg.Listen); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// mustLoadConfig reads the config file or exits. Config errors happen before
// the configured logger exists, so a pretty bootstrap logger reports them.
func mustLoadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		bootLog := logging.New("info", true)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	return cfg
}

// startReminderSweep schedules the daily reminder job and stops the
// scheduler when the lifecycle context ends.
func startReminderSweep(ctx context.Context, database *gorm.DB, location *time.Location, schedule string, log zerolog.Logger) error {
	repositories := db.NewRepositories(database)
	reminders := services.NewReminderService(
		repositories.Users,
		repositories.Events,
		repositories.Tasks,
		services.NewLogPusher(log),
		location,
		log,
	)

	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(schedule, func() {
		if err := reminders.RunDailySweep(time.Now()); err != nil {
			log.Error().Err(err).Msg("reminder sweep failed")
		}
	}); err != nil {
		return err
	}
	scheduler.Start()

	go func() {
		<-ctx.Done()
		scheduler.Stop()
	}()
	return nil
}
