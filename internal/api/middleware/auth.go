package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ruyatech/internal/auth"
	"ruyatech/internal/models"
	"ruyatech/internal/utils/logger"
)

var log = logger.New("auth_middleware")

// AuthMiddleware gates console routes behind a signed session JWT and checks
// the session still holds a backend token in the store.
type AuthMiddleware struct {
	jwtSecret string
	tokens    *auth.Store
}

func NewAuthMiddleware(jwtSecret string, tokens *auth.Store) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret, tokens: tokens}
}

func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := auth.ParseSessionJWT(m.jwtSecret, tokenParts[1])
			if err != nil {
				_ = log.Error("parsing session token: %v", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			// A console session is only live while its backend token is
			// still in the store; signing out or TTL expiry kills it even
			// if the JWT is younger.
			backendToken, err := m.tokens.Token(c.Request().Context(), claims.SessionID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Session lookup failed")
			}
			if backendToken == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}

			c.Set("sessionID", claims.SessionID)
			c.Set("memberID", claims.MemberID)
			c.Set("name", claims.Name)
			c.Set("role", claims.Role)

			// Stamp the request context so the shared backend client can
			// resolve this caller's token.
			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithSessionID(req.Context(), claims.SessionID)))

			return next(c)
		}
	}
}

// RequireAdmin allows only directory moderators through.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetRole(c) != string(models.MemberRoleAdmin) {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

// GetSessionID Helper functions to get values from context
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get("sessionID").(string); ok {
		return id
	}
	return ""
}

func GetMemberID(c echo.Context) string {
	if id, ok := c.Get("memberID").(string); ok {
		return id
	}
	return ""
}

func GetRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok {
		return role
	}
	return ""
}

func IsAdmin(c echo.Context) bool {
	return GetRole(c) == string(models.MemberRoleAdmin)
}
