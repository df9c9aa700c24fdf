package main

import (
	"context"
	"net/http"

	"github.com/speech4j/security-service/internal/api"
	"github.com/speech4j/security-service/internal/infrastructure/config"
	"github.com/speech4j/security-service/internal/infrastructure/db/mysql"
	redisdb "github.com/speech4j/security-service/internal/infrastructure/db/redis"
	"github.com/speech4j/security-service/pkg/logger"
)

// @title Security Service API
// @version 1.0
// @description Authentication and authorization microservice: bearer tokens, users, roles, and per-route access control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Service: "security-service",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	rdb, err := redisdb.Connect(context.Background(), redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting security service")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start failed")
	}
}
