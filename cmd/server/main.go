package main

import (
	"time"

	"farmsync/internal/config"
	"farmsync/internal/database"
	"farmsync/internal/handlers"
	"farmsync/internal/middleware"
	"farmsync/internal/redis"
	"farmsync/internal/repository"
	"farmsync/internal/services"
	"farmsync/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		baseLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Initialize Redis session store
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		baseLogger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	// Initialize repositories
	identityRepo := repository.NewIdentityRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTTLSeconds) * time.Second
	identityService := services.NewIdentityService(identityRepo)
	authService := services.NewAuthService(identityService, workerRepo, redisClient, sessionTTL, baseLogger.Named("svc.auth"))
	farmService := services.NewFarmService(farmRepo)
	workerService := services.NewWorkerService(workerRepo, farmRepo, identityService, cfg.WorkerEmailDomain, baseLogger.Named("svc.worker"))
	recordService := services.NewRecordService(recordRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, identityService)
	farmHandler := handlers.NewFarmHandler(farmService)
	workerHandler := handlers.NewWorkerHandler(workerService, farmService)
	recordHandler := handlers.NewRecordHandler(recordService, farmService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/signout", middleware.RequireSession(authService), authHandler.SignOut)
			auth.GET("/session", middleware.RequireSession(authService), authHandler.Session)
			auth.PUT("/user", middleware.RequireSession(authService), middleware.RequireOwner(), authHandler.UpdateUser)
		}

		farms := api.Group("/farms", middleware.RequireSession(authService), middleware.RequireOwner())
		{
			farms.GET("", farmHandler.List)
			farms.POST("", farmHandler.Create)
			farms.GET("/:id", farmHandler.Get)
			farms.PUT("/:id", farmHandler.Update)
			farms.DELETE("/:id", farmHandler.Delete)
			farms.GET("/:id/workers", workerHandler.ListByFarm)
			farms.POST("/:id/workers", workerHandler.Create)
		}

		workers := api.Group("/workers", middleware.RequireSession(authService), middleware.RequireOwner())
		{
			workers.PUT("/:id", workerHandler.Update)
			workers.DELETE("/:id", workerHandler.Delete)
		}

		api.GET("/worker/dashboard", middleware.RequireSession(authService), middleware.RequireWorker(), workerHandler.Dashboard)

		records := api.Group("/records", middleware.RequireSession(authService))
		{
			workerOnly := middleware.RequireWorker()
			records.POST("/egg-production", workerOnly, recordHandler.CreateEggProduction)
			records.GET("/egg-production", recordHandler.ListEggProduction)
			records.POST("/feed-usage", workerOnly, recordHandler.CreateFeedUsage)
			records.GET("/feed-usage", recordHandler.ListFeedUsage)
			records.POST("/mortality", workerOnly, recordHandler.CreateMortality)
			records.GET("/mortality", recordHandler.ListMortality)
			records.POST("/vaccination", workerOnly, recordHandler.CreateVaccination)
			records.GET("/vaccination", recordHandler.ListVaccination)
			records.POST("/notes", workerOnly, recordHandler.CreateDailyNote)
			records.GET("/notes", recordHandler.ListDailyNotes)
		}
	}

	// Start server
	baseLogger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		baseLogger.Fatal("failed to start server", zap.Error(err))
	}
}
