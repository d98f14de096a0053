package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-tracker/config"
	_ "voice-task-tracker/docs" // Swagger docs
	"voice-task-tracker/internal/httpserver"
	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/task"
	taskRepo "voice-task-tracker/internal/task/repository/postgre"
	taskUC "voice-task-tracker/internal/task/usecase"
	voiceUC "voice-task-tracker/internal/voice/usecase"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/gcalendar"
	"voice-task-tracker/pkg/llmprovider"
	"voice-task-tracker/pkg/log"
	"voice-task-tracker/pkg/postgres"
)

// @title       Voice Task Tracker API
// @description Turns speech transcripts into structured tasks, with task CRUD and optional Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Voice.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Voice.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Voice domain: the completion service is optional, the rule-based parser always works
	var completer voiceUC.Completer
	provider, err := llmprovider.NewProvider(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Completion service not available, using rule-based parsing only: %v", err)
	} else {
		completer = llmprovider.NewClient(provider, &llmprovider.Config{
			Temperature:    cfg.LLM.Temperature,
			MaxTokens:      cfg.LLM.MaxTokens,
			RequestTimeout: cfg.LLM.RequestTimeout,
		}, logger)
		logger.Infof(ctx, "Completion service: %s (%s)", provider.Name(), provider.Model())
	}
	voiceUseCase := voiceUC.New(logger, completer, dateMathParser)

	// 5. Task domain (optional)
	var taskUseCase task.UseCase
	if cfg.Postgres.URL != "" {
		pool, dbErr := postgres.Connect(ctx, cfg.Postgres.URL)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", dbErr)
			return
		}
		defer pool.Close()

		if err := taskRepo.EnsureSchema(ctx, pool); err != nil {
			logger.Errorf(ctx, "Failed to prepare schema: %v", err)
			return
		}

		// Google Calendar client (optional)
		var calendar gcalendar.ICalendar
		if cfg.GoogleCalendar.CredentialsPath != "" {
			calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
			if calErr != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			} else {
				calendar = calendarClient
				logger.Info(ctx, "Google Calendar initialized")
			}
		}

		taskUseCase = taskUC.New(logger, taskRepo.New(pool, logger), calendar, cfg.GoogleCalendar.CalendarID, dateMathParser.Location())
		logger.Info(ctx, "Task store initialized")
	} else {
		logger.Warn(ctx, "Task store skipped: postgres.url / DATABASE_URL is not set")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitPerMin: cfg.Voice.RateLimitPerMin,
			AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		}),
		VoiceUC: voiceUseCase,
		TaskUC:  taskUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
