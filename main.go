// main.go - Wellspring gamification API server
package main

import (
	"log"
	"os"
	"time"
	"wellspring/database"
	"wellspring/handlers"
	"wellspring/middleware"
	"wellspring/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Wire handler services
	handlers.InitHandlers()

	// Initialize cleanup service
	services.InitCleanupService()
	defer func() {
		if cleanupService := services.GetCleanupService(); cleanupService != nil {
			cleanupService.Stop()
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// Auth routes with stricter rate limiting
	authGroup := app.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)

	// Avatar shop routes
	shopGroup := app.Group("/avatar-shop")
	shopGroup.Use(middleware.AuthMiddleware)
	shopGroup.Get("/items", handlers.GetShopItems)
	shopGroup.Post("/purchase", handlers.PurchaseItem)

	// User avatar routes
	avatarGroup := app.Group("/user-avatars")
	avatarGroup.Use(middleware.AuthMiddleware)
	avatarGroup.Get("/", handlers.GetUserAvatars)
	avatarGroup.Post("/set-active", handlers.SetActiveAvatar)
	avatarGroup.Post("/add-feature", handlers.AddAvatarFeature)

	// Quest routes
	questGroup := app.Group("/quests")
	questGroup.Use(middleware.AuthMiddleware)
	questGroup.Get("/", handlers.GetQuests)
	questGroup.Post("/:questId/progress", handlers.IncrementQuestProgress)

	// Achievement routes
	achievementGroup := app.Group("/achievements")
	achievementGroup.Use(middleware.AuthMiddleware)
	achievementGroup.Get("/", handlers.GetUserAchievements)
	achievementGroup.Post("/:achievementId/award", handlers.AwardAchievement)

	// Streak routes
	streakGroup := app.Group("/streaks")
	streakGroup.Use(middleware.AuthMiddleware)
	streakGroup.Get("/", handlers.GetStreaks)
	streakGroup.Post("/:type/update", handlers.UpdateStreak)

	// Seasonal challenge routes
	challengeGroup := app.Group("/seasonal-challenges")
	challengeGroup.Use(middleware.AuthMiddleware)
	challengeGroup.Get("/", handlers.GetSeasonalChallenges)
	challengeGroup.Post("/:challengeId/join", handlers.JoinSeasonalChallenge)

	// User routes
	userGroup := app.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Get("/wallet", handlers.GetWallet)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
