package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig tunes the middleware chain.
type RouterConfig struct {
	// StorageTimeout bounds the request context seen by handlers. Zero disables it.
	StorageTimeout time.Duration
	// RateLimitPerSec and RateLimitBurst size each client's token bucket.
	// A non-positive rate disables limiting.
	RateLimitPerSec float64
	RateLimitBurst  int
}

// NewRouter builds the echo instance serving the drone fleet API.
func NewRouter(ctx context.Context, cfg RouterConfig, server *Server, logger *slog.Logger) (*echo.Echo, error) {
	logger = logger.With("component", "http")

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(SwaggerInstance)))

	api := e.Group("/api",
		RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst),
		StorageDeadline(cfg.StorageTimeout),
		validator,
	)
	api.POST("/drones", server.RegisterDrone)
	api.GET("/drones", server.ListDrones)
	api.GET("/drones/available", server.FindLoadableDrones)
	api.POST("/drones/:serial/load", server.LoadDrone)
	api.GET("/drones/:serial/medications", server.GetDroneLoads)
	api.GET("/drones/:serial/battery", server.GetBatteryLevel)
	api.PATCH("/drones/:serial/battery", server.ReportBattery)
	api.PATCH("/drones/:serial/state", server.ChangeDroneState)
	api.GET("/logs/battery", server.GetBatteryLogs)

	return e, nil
}

// StorageDeadline gives each request a deadline that the store honors.
func StorageDeadline(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if timeout <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
