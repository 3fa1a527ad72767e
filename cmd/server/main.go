package main

import (
	"context"
	"fmt"
	"os"
	"time"

	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/db"
	"github.com/BG-legacy/TimeWell/internal/handlers"
	"github.com/BG-legacy/TimeWell/internal/logger"
	"github.com/BG-legacy/TimeWell/internal/middleware"
	"github.com/BG-legacy/TimeWell/internal/observability"
	"github.com/BG-legacy/TimeWell/internal/repos"
	"github.com/BG-legacy/TimeWell/internal/server"
	"github.com/BG-legacy/TimeWell/internal/services"
	"github.com/BG-legacy/TimeWell/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "timewell",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	userPreferencesRepo := repos.NewUserPreferencesRepo(thePG, log)
	goalRepo := repos.NewGoalRepo(thePG, log)
	eventRepo := repos.NewEventRepo(thePG, log)
	habitRepo := repos.NewHabitRepo(thePG, log)
	suggestionRepo := repos.NewSuggestionRepo(thePG, log)

	// Notifier (optional; the server runs without Redis)
	notifier, err := redisclient.NewNotifier(log)
	if err != nil {
		log.Warn("Redis notifier unavailable, suggestion events will not be published", "error", err)
		notifier = redisclient.NewNoopNotifier()
	}
	defer notifier.Close()

	// Services
	log.Info("Setting up services from main...")
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(
		thePG, log, userRepo, userPreferencesRepo, userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	userService := services.NewUserService(log, userRepo, userPreferencesRepo)
	goalService := services.NewGoalService(log, goalRepo)
	eventService := services.NewEventService(log, eventRepo, goalRepo)
	habitService := services.NewHabitService(log, habitRepo)
	analysisService := services.NewAnalysisService(log, openaiClient, eventRepo, goalRepo, userPreferencesRepo, suggestionRepo, notifier)
	suggestionService := services.NewSuggestionService(log, suggestionRepo, eventRepo, notifier)
	coachService := services.NewCoachService(log, openaiClient, userPreferencesRepo, eventRepo, goalRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	eventHandler := handlers.NewEventHandler(eventService)
	habitHandler := handlers.NewHabitHandler(habitService)
	suggestionHandler := handlers.NewSuggestionHandler(analysisService, suggestionService)
	coachHandler := handlers.NewCoachHandler(coachService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		GoalHandler:       goalHandler,
		EventHandler:      eventHandler,
		HabitHandler:      habitHandler,
		SuggestionHandler: suggestionHandler,
		CoachHandler:      coachHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
