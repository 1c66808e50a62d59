package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/config"
	"github.com/sritampradhan92-jpg/learneEdge/delivery"
	"github.com/sritampradhan92-jpg/learneEdge/middleware"
	"github.com/sritampradhan92-jpg/learneEdge/repository"
	"github.com/sritampradhan92-jpg/learneEdge/service"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	// Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// Boot DB
	db, err := config.BootDB()
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}

	// Redis config
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Fatal("❌ Failed to fetch Redis address from env")
	}
	redisClient := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET not found in .env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("❌ JWT_SECRET must be at least 32 characters for security. Generate one with: openssl rand -base64 32")
	}

	// Avatar storage
	avatarDir := os.Getenv("AVATAR_DIR")
	if avatarDir == "" {
		avatarDir = "./uploads"
	}
	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8080"
	}

	// Init repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRedisRepository(redisClient)
	courseRepo := repository.NewCourseRepository(db)
	contactRepo := repository.NewContactRepository(db)
	avatarStore := repository.NewDiskObjectStore(avatarDir, publicBaseURL)

	// Init services
	mailer := utils.NewSMTPMailer()
	authService := service.NewAuthService(userRepo, otpRepo, mailer, jwtSecret)
	courseService := service.NewCourseUseCase(courseRepo)
	contactService := service.NewContactUseCase(contactRepo)
	userService := service.NewUserUseCase(userRepo, avatarStore)

	middleware.InitRateLimiter(redisClient)
	middleware.CleanupExpiredRateLimits()

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)
	app.Use(middleware.RateLimiter())

	// Uploaded avatars are served straight from disk
	app.Static("/static", avatarDir)

	// Init handlers
	delivery.NewAuthHandler(app, authService)
	delivery.NewCourseHandler(app, courseService, authService.GetAccessTokenManager())
	delivery.NewContactHandler(app, contactService)
	delivery.NewUserHandler(app, userService, authService.GetAccessTokenManager())

	// Graceful shutdown setup
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
