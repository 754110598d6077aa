package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/application/services"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/delivery/handler"
	"taskboard/internal/delivery/ws"
	"taskboard/internal/infrastructure"
	"taskboard/internal/infrastructure/db/mongodb"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	mongo, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	log.Println("Connected to MongoDB")

	userRepo := mongodb.NewUserRepository(mongo)
	taskRepo := mongodb.NewTaskRepository(mongo)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create user indexes: ", err)
	}
	if err := taskRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create task indexes: ", err)
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	redisService := infrastructure.NewRedisService(cfg)
	authLimiter := infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests)

	authService := services.NewAuthService(userRepo, jwtService, redisService)
	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo)

	hub := ws.NewHub()

	e := handler.NewRouter(cfg, handler.RouterDeps{
		Auth:         handler.NewAuthHandler(authService),
		Task:         handler.NewTaskHandler(taskService),
		User:         handler.NewUserHandler(userService),
		Health:       handler.NewHealthHandler(mongo, hub, cfg.Environment),
		Presence:     ws.NewHandler(hub, jwtService, cfg.AllowedOrigins),
		JWTAuth:      handler.JWTAuth(jwtService, authService),
		AuthThrottle: handler.AuthRateLimit(authLimiter),
	})

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	hub.Close()
	authLimiter.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := redisService.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	if err := mongo.Disconnect(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
}
