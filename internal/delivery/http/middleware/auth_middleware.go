package middleware

import (
	"net/http"
	"strings"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the authenticated
// account's email on the request context for handlers and services.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		email, err := m.tokenSvc.ExtractSubject(tokenString)
		if err != nil || email == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set the identity on both contexts: echo's for handlers, the
		// request's for the service layer.
		c.Set("userEmail", email)
		ctx := deliverycontext.WithUserEmail(c.Request().Context(), email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
