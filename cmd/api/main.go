package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"psybench/internal/config"
	"psybench/internal/db"
	apihttp "psybench/internal/http"
	"psybench/internal/llm"
	"psybench/internal/repository"
	"psybench/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var profileRepo repository.ProfileRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		profileRepo = repository.NewPgProfileRepository(pool)
	} else {
		logger.Warn("database not configured, profiles will not be persisted")
	}

	var statusStore service.RunStatusStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			statusStore = service.NewRedisRunStatusStore(redisClient, 24*time.Hour)
		}
		cancel()
	}
	if statusStore == nil {
		statusStore = service.NewMemoryRunStatusStore(24 * time.Hour)
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	sampler := service.NewSampler(llmClient, logger, cfg.SampleCount, cfg.Concurrency, cfg.Temperature)
	assessSvc := service.NewAssessmentService(sampler, profileRepo, statusStore, logger)
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, api is open")
	}

	apiSecret := cfg.APISecret
	if apiSecret == "" {
		apiSecret = cfg.JWTSecret
	}
	authHandler := apihttp.NewAuthHandler(logger, jwtSvc, apiSecret)
	assessHandler := apihttp.NewAssessmentHandler(logger, assessSvc, profileRepo)
	scoreHandler := apihttp.NewScoreHandler(logger)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, assessHandler, scoreHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
