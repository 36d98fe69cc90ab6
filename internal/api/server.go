package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"ruyatech/internal/api/validator"
	"ruyatech/internal/auth"
	"ruyatech/internal/client"
	"ruyatech/internal/config"
	"ruyatech/internal/i18n"

	console "ruyatech/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the console's HTTP surface: the public directory endpoints and
// the admin moderation dashboard, all backed by the remote directory API.
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	backend *client.Client
	tokens  *auth.Store
	msgs    *i18n.Catalog
}

var log = console.New("API-Server")

func NewServer(cfg *config.Config, backend *client.Client, tokens *auth.Store, msgs *i18n.Catalog) *Server {
	e := echo.New()
	e.HideBanner = true

	// Create custom validator
	e.Validator = validator.NewValidator()

	// Configure middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderContentLength},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	// Custom error handler
	e.HTTPErrorHandler = customHTTPErrorHandler

	s := &Server{
		echo:    e,
		config:  cfg,
		backend: backend,
		tokens:  tokens,
		msgs:    msgs,
	}

	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Health check endpoint
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"backend": s.backend.BaseURL(),
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Custom HTTP error handler
func customHTTPErrorHandler(err error, c echo.Context) {
	var (
		code    = http.StatusInternalServerError
		message interface{}
		fields  map[string][]string
	)

	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		// The backend already judged this request; relay its verdict.
		code = apiErr.Status
		message = apiErr.Message
		fields = apiErr.Fields
	case errors.Is(err, client.ErrNoToken):
		code = http.StatusUnauthorized
		message = "sign in first"
	default:
		switch e := err.(type) {
		case *echo.HTTPError:
			code = e.Code
			message = e.Message
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = formatValidationErrors(e)
		default:
			message = http.StatusText(code)
		}
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			body := map[string]interface{}{
				"error": message,
				"code":  code,
				"time":  time.Now().Format(time.RFC3339),
			}
			if len(fields) > 0 {
				body["fields"] = fields
			}
			err = c.JSON(code, body)
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}

// formatValidationErrors formats validation errors into a map
func formatValidationErrors(errors validator.ValidationErrors) map[string]string {
	errMap := make(map[string]string)
	for _, err := range errors {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			errMap[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errMap[field] = fmt.Sprintf("%s must be a valid email", field)
		case "min":
			errMap[field] = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			errMap[field] = fmt.Sprintf("%s must be at most %s", field, param)
		case "url":
			errMap[field] = fmt.Sprintf("%s must be a valid URL", field)
		case "member_role":
			errMap[field] = fmt.Sprintf("%s must be one of: professional, student, company", field)
		case "member_status":
			errMap[field] = fmt.Sprintf("%s must be one of: pending, approved, suspended, rejected", field)
		case "ad_status":
			errMap[field] = fmt.Sprintf("%s must be one of: pending, published, unpublished, rejected", field)
		case "post_status":
			errMap[field] = fmt.Sprintf("%s must be one of: draft, pending, published, unpublished, rejected", field)
		default:
			errMap[field] = fmt.Sprintf("%s failed validation: %s", field, tag)
		}
	}
	return errMap
}
