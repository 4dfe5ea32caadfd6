package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediavault/database"
	"mediavault/internal/api/handler"
	"mediavault/internal/api/middleware"
	"mediavault/internal/api/repository"
	"mediavault/internal/api/service"
	"mediavault/internal/api/session"
	"mediavault/internal/config"
	"mediavault/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	slogger := logger.New(cfg)

	db, err := database.ConnectDB(cfg, slogger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	rdb, err := database.ConnectRedis(context.Background(), cfg, slogger)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()

	// Repositories
	mediaRepo := repository.NewMediaRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	creatorRepo := repository.NewCreatorRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Session tracking
	tracker := session.NewTracker(session.NewRedisStore(rdb, cfg.SessionTTL))

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	mediaService := service.NewMediaService(mediaRepo, genreRepo, creatorRepo)
	genreService := service.NewGenreService(genreRepo, tracker)
	creatorService := service.NewCreatorService(creatorRepo, tracker)
	ratingService := service.NewRatingService(ratingRepo, mediaRepo, tracker)
	userService := service.NewUserService(userRepo, ratingRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	genreHandler := handler.NewGenreHandler(genreService)
	creatorHandler := handler.NewCreatorHandler(creatorService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	userHandler := handler.NewUserHandler(userService)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	defer limiter.Close()

	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(limiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := r.Group("/api")
	{
		api.GET("", authHandler.Home)
		authHandler.RegisterRoutes(api)

		private := api.Group("")
		private.Use(middleware.AuthMiddleware(authService))
		{
			mediaHandler.RegisterRoutes(private)
			genreHandler.RegisterRoutes(private)
			creatorHandler.RegisterRoutes(private)
			ratingHandler.RegisterRoutes(private)
			userHandler.RegisterRoutes(private)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	slogger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
