package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/BG-legacy/TimeWell/internal/handlers"
	"github.com/BG-legacy/TimeWell/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	GoalHandler       *handlers.GoalHandler
	EventHandler      *handlers.EventHandler
	HabitHandler      *handlers.HabitHandler
	SuggestionHandler *handlers.SuggestionHandler
	CoachHandler      *handlers.CoachHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("timewell"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)

	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.GET("/user/preferences", cfg.UserHandler.GetPreferences)
	protected.PATCH("/user/preferences", cfg.UserHandler.UpdatePreferences)

	// Goals
	protected.POST("/goals", cfg.GoalHandler.Create)
	protected.GET("/goals", cfg.GoalHandler.List)
	protected.GET("/goals/:id", cfg.GoalHandler.Get)
	protected.PATCH("/goals/:id", cfg.GoalHandler.Update)
	protected.DELETE("/goals/:id", cfg.GoalHandler.Delete)

	// Events
	protected.POST("/events", cfg.EventHandler.Create)
	protected.GET("/events", cfg.EventHandler.List)
	protected.GET("/events/:id", cfg.EventHandler.Get)
	protected.PATCH("/events/:id", cfg.EventHandler.Update)
	protected.POST("/events/:id/complete", cfg.EventHandler.Complete)
	protected.DELETE("/events/:id", cfg.EventHandler.Delete)
	protected.GET("/events/:id/suggestions", cfg.SuggestionHandler.ListByEvent)

	// Habits
	protected.POST("/habits", cfg.HabitHandler.Create)
	protected.GET("/habits", cfg.HabitHandler.List)
	protected.GET("/habits/:id", cfg.HabitHandler.Get)
	protected.PATCH("/habits/:id", cfg.HabitHandler.Update)
	protected.POST("/habits/:id/complete", cfg.HabitHandler.Complete)
	protected.POST("/habits/:id/reset-streak", cfg.HabitHandler.ResetStreak)
	protected.DELETE("/habits/:id", cfg.HabitHandler.Delete)

	// Suggestions
	protected.POST("/suggestions/analyze", cfg.SuggestionHandler.Analyze)
	protected.GET("/suggestions", cfg.SuggestionHandler.List)
	protected.GET("/suggestions/:id", cfg.SuggestionHandler.Get)
	protected.PATCH("/suggestions/:id/apply", cfg.SuggestionHandler.Apply)
	protected.PATCH("/suggestions/:id/unapply", cfg.SuggestionHandler.Unapply)

	// Voice styles
	protected.GET("/voice-styles", handlers.ListVoiceStyles)

	// Coach
	protected.POST("/coach/ask", cfg.CoachHandler.Ask)
	protected.POST("/coach/feedback", cfg.CoachHandler.Feedback)
	protected.POST("/coach/encourage", cfg.CoachHandler.Encourage)
	protected.GET("/coach/weekly-review", cfg.CoachHandler.WeeklyReview)

	return router
}

func allowedOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if raw == "" {
		return []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
