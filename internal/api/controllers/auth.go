package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ruyatech/internal/api/middleware"
	"ruyatech/internal/api/validator"
	"ruyatech/internal/auth"
	"ruyatech/internal/client"
	"ruyatech/internal/utils/logger"
)

// AuthController exchanges backend credentials for a console session: the
// backend bearer token goes into the token store, the browser only ever
// sees the console's own session JWT.
type AuthController struct {
	api        *client.Client
	tokens     *auth.Store
	jwtSecret  string
	sessionTTL time.Duration
	log        *logger.Logger
}

func NewAuthController(api *client.Client, tokens *auth.Store, jwtSecret string, sessionTTL time.Duration) *AuthController {
	return &AuthController{
		api:        api,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        logger.New("auth"),
	}
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c echo.Context) error {
	var req validator.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	result, err := ac.api.Members.Login(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *client.APIError
		if client.IsNotFound(err) || (errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	sessionID := uuid.New().String()
	if err := ac.tokens.Save(ctx, sessionID, result.Token); err != nil {
		return ac.log.Error("storing session token: %v", err)
	}

	signed, err := auth.GenerateSessionJWT(ac.jwtSecret, sessionID, result.Member, ac.sessionTTL)
	if err != nil {
		return ac.log.Error("signing session token: %v", err)
	}

	ac.log.Success("session opened for %s", result.Member.Email)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":  signed,
		"member": result.Member,
	})
}

// Logout handles POST /auth/logout: dropping the stored backend token is
// what actually ends the session, the JWT alone is useless afterwards.
func (ac *AuthController) Logout(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	if err := ac.tokens.Delete(c.Request().Context(), sessionID); err != nil {
		return ac.log.Error("dropping session token: %v", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "signed out",
	})
}
