package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ironlabs/basic-auth/internal/api/handler"
	"github.com/ironlabs/basic-auth/internal/api/middleware"
	"github.com/ironlabs/basic-auth/internal/core/ports"
	"github.com/ironlabs/basic-auth/internal/core/service"
	"github.com/ironlabs/basic-auth/internal/infrastructure/config"
	"github.com/ironlabs/basic-auth/internal/infrastructure/db/memory"
	mongodb "github.com/ironlabs/basic-auth/internal/infrastructure/db/mongo"
	redisdb "github.com/ironlabs/basic-auth/internal/infrastructure/db/redis"
	"github.com/ironlabs/basic-auth/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the memory session backend is configured.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, !cfg.Production())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("basicauth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)

	var store ports.SessionStore
	if rdb != nil {
		store = redisdb.NewSessionStore(rdb)
	} else {
		store = memory.NewSessionStore()
	}
	sessions := service.NewSessionManager(store, cfg.Session.TTL())

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, sessions)
	cookies := middleware.NewCookiePolicy(cfg.Env, cfg.Session.TTL())

	authHandler := handler.NewAuthHandler(authService, cookies)
	profileHandler := handler.NewProfileHandler(authService, sessions, cookies)
	requireSession := middleware.Session(sessions, cookies)

	// --- Auth routes ---
	e.GET("/", handler.Home)
	e.GET("/signup", authHandler.SignupForm)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", profileHandler.Profile, requireSession)
	e.GET("/logout", profileHandler.Logout)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
