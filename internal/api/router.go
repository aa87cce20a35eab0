package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/promoplaza/promo-api/internal/api/handler"
	"github.com/promoplaza/promo-api/internal/api/middleware"
	"github.com/promoplaza/promo-api/internal/core/service"
	"github.com/promoplaza/promo-api/internal/infrastructure/config"
	"github.com/promoplaza/promo-api/internal/infrastructure/db/postgres"
	"github.com/promoplaza/promo-api/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("promoapi"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	promoRepo := postgres.NewPromotionRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	promoService := service.NewPromotionService(promoRepo)

	authHandler := handler.NewAuthHandler(authService)
	promoHandler := handler.NewPromotionHandler(promoService)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	requireAdmin := middleware.Admin(cfg.AdminEmail)

	// --- API routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	e.GET("/api/promociones", promoHandler.List)
	e.POST("/api/promociones", promoHandler.Create, requireAuth, requireAdmin)
	e.PUT("/api/promociones/:id", promoHandler.Update, requireAuth, requireAdmin)
	e.DELETE("/api/promociones/:id", promoHandler.Delete, requireAuth, requireAdmin)

	// Plaintext probe kept from the original API.
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Servidor funcionando 🚀")
	})

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Embedded frontend ---
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))
	for _, route := range web.Routes {
		e.FileFS(route, web.IndexFile, web.Static)
	}

	return e
}
