package http

import (
	"log/slog"

	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// NewRouter assembles the echo instance: request logging, panic recovery,
// /health, swagger UI, and the JWT-protected, OpenAPI-validated API group.
func NewRouter(server *Server, jwtSecret string, logger *slog.Logger) (*echo.Echo, error) {
	docSwagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(docSwagger); err != nil {
		return nil, err
	}

	validationSwagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(validationSwagger, BasePath)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Validator = newStructValidator()

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, jwtAuth(jwtSecret), resolveActor, validate)
	servers.RegisterHandlersWithBaseURL(api, server, "")

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
