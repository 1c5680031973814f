package http

import (
	"net/http"
	"strings"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const currentUserKey = "currentUser"

// AuthMiddleware authenticates requests with a Bearer JWT and resolves the
// subject claim to a platform user. The resolved user is stored on the echo
// context for the route handlers.
type AuthMiddleware struct {
	secret []byte
	users  ports.UserRepository
}

// NewAuthMiddleware creates the JWT authentication middleware.
func NewAuthMiddleware(secret []byte, users ports.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, users: users}
}

// Authenticate rejects requests without a valid token. Tokens must be signed
// with HS256 and carry the user id in the subject claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return ctx.NoContent(http.StatusUnauthorized)
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (any, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return ctx.NoContent(http.StatusUnauthorized)
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			return ctx.NoContent(http.StatusUnauthorized)
		}

		userID, err := kernel.UUIDFromString(subject)
		if err != nil {
			return ctx.NoContent(http.StatusUnauthorized)
		}

		current, err := m.users.Get(ctx.Request().Context(), userID)
		if err != nil {
			return ctx.NoContent(http.StatusUnauthorized)
		}

		ctx.Set(currentUserKey, current)
		return next(ctx)
	}
}

// currentUser returns the authenticated user stored by the middleware.
func currentUser(ctx echo.Context) *user.User {
	current, _ := ctx.Get(currentUserKey).(*user.User)
	return current
}
