package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogwalk/dogwalk-api/internal/api/handler"
	"github.com/dogwalk/dogwalk-api/internal/api/middleware"
	"github.com/dogwalk/dogwalk-api/internal/core/service"
	"github.com/dogwalk/dogwalk-api/internal/infrastructure/config"
	mongodb "github.com/dogwalk/dogwalk-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dogwalk/dogwalk-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dogwalk"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	dogRepo := mongodb.NewDogRepository(db)
	walkRepo := mongodb.NewWalkRepository(db)
	notifier := redisdb.NewPublisher(rdb, cfg.Redis.NotifyChannel)

	creds := service.NewCredentials(cfg.JWTSecret, 0)
	accountService := service.NewAccountService(accountRepo, walkRepo, creds, notifier, log)
	dogService := service.NewDogService(dogRepo, accountRepo, log)
	walkService := service.NewWalkService(walkRepo, accountRepo, notifier, log)

	userHandler := handler.NewUserHandler(accountService, cfg.BaseURL)
	dogHandler := handler.NewDogHandler(dogService, cfg.BaseURL)
	walkHandler := handler.NewWalkHandler(walkService, cfg.BaseURL)

	auth := middleware.Auth(creds)
	requireJSON := middleware.RequireJSON()

	// --- Index ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK,
			"Welcome to the DogWalk API, go to /swagger/index.html for the documentation")
	})

	// --- Users ---
	users := e.Group("/users")
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update, auth, requireJSON)
	users.PUT("/:id", userHandler.Replace, auth, requireJSON)
	users.DELETE("/:id", userHandler.Delete, auth)
	users.PATCH("/:id/join/:walkId", userHandler.Join, auth)
	users.PATCH("/:id/leave", userHandler.Leave, auth)

	// --- Dogs ---
	dogs := e.Group("/dogs", auth)
	dogs.GET("", dogHandler.List)
	dogs.GET("/:id", dogHandler.Get)
	dogs.POST("", dogHandler.Create)
	dogs.PATCH("/:id", dogHandler.Update, requireJSON)
	dogs.PUT("/:id", dogHandler.Replace, requireJSON)
	dogs.DELETE("/:id", dogHandler.Delete)

	// --- Walks ---
	walks := e.Group("/walks", auth)
	walks.GET("", walkHandler.List)
	walks.GET("/:id", walkHandler.Get)
	walks.POST("", walkHandler.Create)
	walks.PATCH("/:id", walkHandler.Update, requireJSON)
	walks.PUT("/:id", walkHandler.Replace, requireJSON)
	walks.DELETE("/:id", walkHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
