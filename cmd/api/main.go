package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"macrotrack/internal/config"
	"macrotrack/internal/db"
	apihttp "macrotrack/internal/http"
	"macrotrack/internal/repository"
	"macrotrack/internal/service"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	diaryRepo := repository.NewPgDiaryRepository(pool)
	weightRepo := repository.NewPgWeightRepository(pool)

	var (
		loginLimiter service.LoginRateLimiter
		tokenStore   service.RefreshTokenStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, 10*time.Minute, cfg.LoginMaxTries)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if loginLimiter == nil {
		loginLimiter = service.NewLoginRateLimiter(10*time.Minute, cfg.LoginMaxTries)
	}
	if tokenStore == nil {
		tokenStore = service.NewMemoryRefreshTokenStore()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTL)*time.Minute,
		time.Duration(cfg.JWTRefreshTTL)*time.Minute,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo, loginLimiter)
	profileSvc := service.NewProfileService(logger, profileRepo)
	diarySvc := service.NewDiaryService(logger, diaryRepo, profileRepo)
	weightSvc := service.NewWeightService(logger, weightRepo, profileSvc)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewUserHandler(logger, userSvc, jwtSvc),
		apihttp.NewProfileHandler(logger, profileSvc),
		apihttp.NewDiaryHandler(logger, diarySvc),
		apihttp.NewWeightHandler(logger, weightSvc),
	)

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
