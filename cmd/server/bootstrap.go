package main

import (
	"github.com/quickta/backend/internal/config"
	"github.com/quickta/backend/internal/handlers"
	"github.com/quickta/backend/internal/models"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	conversationHandler *handlers.ConversationHandler
	chatlogHandler      *handlers.ChatlogHandler
	feedbackHandler     *handlers.FeedbackHandler
	reportHandler       *handlers.ReportHandler
	courseHandler       *handlers.CourseHandler
	userHandler         *handlers.UserHandler
	modelHandler        *handlers.GPTModelHandler
}

// bootstrap initializes all application dependencies: database, roster store,
// services and handlers.
func bootstrap(cfg *config.Config) *appServices {
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	db := models.GetDB()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	transcripts := services.NewTranscriptService(db)
	completions := services.NewCompletionService(db, &cfg.OpenAI)
	chatlogs := services.NewChatlogService(db, transcripts, completions, cfg.Chat.DefaultTimezone)
	conversations := services.NewConversationService(db, cfg.Chat.AgentName)
	feedbacks := services.NewFeedbackService(db)
	reports := services.NewReportService(db)
	courses := services.NewCourseService(db)
	users := services.NewUserService(db)
	roster := services.NewRosterService(db, rdb)
	profiles := services.NewGPTModelService(db)

	return &appServices{
		conversationHandler: handlers.NewConversationHandler(conversations),
		chatlogHandler:      handlers.NewChatlogHandler(chatlogs),
		feedbackHandler:     handlers.NewFeedbackHandler(feedbacks),
		reportHandler:       handlers.NewReportHandler(reports),
		courseHandler:       handlers.NewCourseHandler(courses, roster),
		userHandler:         handlers.NewUserHandler(users, courses, roster),
		modelHandler:        handlers.NewGPTModelHandler(profiles),
	}
}
