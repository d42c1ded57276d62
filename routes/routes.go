package routes

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/Madhav-Gupta-28/catalog-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/catalog-backend-go/middleware"
	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

type Dependencies struct {
	Products      *handlers.ProductHandler
	Users         *handlers.UserHandler
	Health        *handlers.HealthHandler
	Gate          *customMiddleware.Gate
	CORSWhitelist []string
	ImageDir      string
	BodyLimit     string

	// Metrics default to the global prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func (d Dependencies) registerer() prometheus.Registerer {
	if d.Registerer == nil {
		return prometheus.DefaultRegisterer
	}
	return d.Registerer
}

func (d Dependencies) gatherer() prometheus.Gatherer {
	if d.Gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return d.Gatherer
}

// NewEcho builds the configured server with every route registered.
func NewEcho(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler
	e.Validator = utils.NewRequestValidator()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(customMiddleware.RequestContext)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Ctx(c.Request().Context()).Info()
			if v.Error != nil {
				event = event.Str("error", v.Error.Error())
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Int64("latency_us", v.Latency.Microseconds()).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	e.Use(customMiddleware.Tracing)
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog",
		Registerer: deps.registerer(),
	}))
	e.Use(customMiddleware.CommitError)
	if deps.BodyLimit != "" {
		e.Use(middleware.BodyLimit(deps.BodyLimit))
	}

	SetupRoutes(e, deps)
	return e
}

func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cors := customMiddleware.CORS()
	corsWithOptions := customMiddleware.CORSWithOptions(deps.CORSWhitelist)
	verifyUser := deps.Gate.VerifyUser
	verifyAdmin := deps.Gate.VerifyAdmin

	e.GET("/health", deps.Health.Live)
	e.GET("/ready", deps.Health.Ready)
	deps.registerer().MustRegister(deps.Products.Collectors()...)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.gatherer()}))
	if deps.ImageDir != "" {
		e.Static("/images/products", deps.ImageDir)
	}

	// Users
	u := e.Group("/users")
	u.OPTIONS("", handlers.Preflight, corsWithOptions)
	u.GET("", deps.Users.ListUsers, cors, verifyUser, verifyAdmin)
	u.OPTIONS("/signup", handlers.Preflight, corsWithOptions)
	u.POST("/signup", deps.Users.SignUp, corsWithOptions)
	u.OPTIONS("/login", handlers.Preflight, corsWithOptions)
	u.POST("/login", deps.Users.Login, corsWithOptions)

	h := deps.Products
	p := e.Group("/products")

	// Image upload
	p.OPTIONS("/upload", handlers.Preflight, corsWithOptions)
	p.GET("/upload", handlers.NotSupported, corsWithOptions, verifyUser, verifyAdmin)
	p.POST("/upload", h.UploadImage, corsWithOptions, verifyUser, verifyAdmin)

	// Collection
	p.OPTIONS("", handlers.Preflight, corsWithOptions)
	p.GET("", h.ListProducts, cors)
	p.POST("", h.CreateProduct, corsWithOptions, verifyUser, verifyAdmin)
	p.PUT("", handlers.NotSupported, corsWithOptions)
	p.DELETE("", h.DeleteProducts, corsWithOptions, verifyUser, verifyAdmin)

	// Single product
	p.OPTIONS("/:productId", handlers.Preflight, corsWithOptions)
	p.GET("/:productId", h.GetProduct, cors)
	p.POST("/:productId", handlers.NotSupported, corsWithOptions)
	p.PUT("/:productId", h.UpdateProduct, corsWithOptions, verifyUser, verifyAdmin)
	p.DELETE("/:productId", h.DeleteProduct, corsWithOptions, verifyUser, verifyAdmin)

	// Images of a product
	p.OPTIONS("/:productId/images", handlers.Preflight, corsWithOptions)
	p.GET("/:productId/images", h.ListImages, cors)
	p.POST("/:productId/images", h.AppendImage, corsWithOptions, verifyUser)
	p.PUT("/:productId/images", handlers.NotSupported, corsWithOptions)
	p.DELETE("/:productId/images", h.DeleteImages, corsWithOptions, verifyUser, verifyAdmin)

	// Single image
	p.OPTIONS("/:productId/images/:imageId", handlers.Preflight, corsWithOptions)
	p.GET("/:productId/images/:imageId", h.GetImage, cors)
	p.POST("/:productId/images/:imageId", handlers.NotSupported, corsWithOptions)
	p.PUT("/:productId/images/:imageId", h.UpdateImage, corsWithOptions, verifyUser)
	p.DELETE("/:productId/images/:imageId", h.DeleteImage, corsWithOptions, verifyUser, verifyAdmin)
}
