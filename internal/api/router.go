package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/speech4j/security-service/internal/api/handler"
	"github.com/speech4j/security-service/internal/api/middleware"
	"github.com/speech4j/security-service/internal/auth"
	"github.com/speech4j/security-service/internal/core/service"
	"github.com/speech4j/security-service/internal/infrastructure/db/mysql"
	redisdb "github.com/speech4j/security-service/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes and middleware wired.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("security"))

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	cache := redisdb.NewAuthorityCache(rdb)

	codec := auth.NewTokenCodec(jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, roleRepo, log)
	roleService := service.NewRoleService(roleRepo, cache, log)
	authService := service.NewAuthService(userService, codec, log)
	resolver := service.NewAuthorityResolver(roleRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, roleService)
	roleHandler := handler.NewRoleHandler(roleService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	gate := middleware.Authenticate(codec)
	adminOnly := middleware.RequireAuthority(resolver, "admin")

	// --- Public routes: registration, login, probes, metrics, docs ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Everything else sits behind the authentication gate ---
	secured := e.Group("", gate)

	secured.GET("/users", userHandler.List)
	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete, adminOnly)
	secured.GET("/users/:id/roles", userHandler.Roles)
	secured.POST("/users/:id/roles", userHandler.AddRole)
	secured.DELETE("/users/:userId/roles/:roleId", userHandler.RemoveRole)

	secured.GET("/roles", roleHandler.List)
	secured.POST("/roles", roleHandler.Create)
	secured.GET("/roles/:id", roleHandler.Get)
	secured.PUT("/roles/:id", roleHandler.Update)
	secured.DELETE("/roles/:id", roleHandler.Delete)

	return e
}
