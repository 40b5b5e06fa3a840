package http

import (
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/actor"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the resolved actor is stored under.
const actorContextKey = "actor"

// Claims represents the JWT claims carried by an access token.
// Subject is the user's UUID; Role is the wire role name.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken issues a signed access token for a user.
// Exposed for tests and local tooling; production tokens come from the
// accounts service, which shares the signing secret.
func GenerateToken(secret []byte, userID kernel.UUID, role actor.Role, ttl time.Duration) (string, error) {
	claims := &Claims{
		Role: role.String(),
		StandardClaims: jwt.StandardClaims{
			Subject:   userID.String(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthMiddleware resolves the Authorization header to an actor on the
// request context.
//
// A missing header produces the anonymous actor rather than an immediate
// rejection: whether anonymous access is acceptable is the access policy's
// decision, not the transport's. A present but invalid token is rejected
// here with 401, because a caller who attempted authentication should learn
// it failed.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set(actorContextKey, actor.Anonymous())
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return writeUnauthorized(c, "Invalid Authorization header format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(_ *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				return writeUnauthorized(c, "Invalid token")
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return writeUnauthorized(c, "Invalid token subject")
			}

			role, err := actor.RoleFromString(claims.Role)
			if err != nil {
				return writeUnauthorized(c, "Invalid token role")
			}

			requester, err := actor.NewActor(userID, role)
			if err != nil {
				return writeUnauthorized(c, "Invalid token identity")
			}

			c.Set(actorContextKey, requester)
			return next(c)
		}
	}
}

// actorFromContext returns the actor resolved by AuthMiddleware.
// Routes registered without the middleware see the anonymous actor.
func actorFromContext(c echo.Context) actor.Actor {
	if a, ok := c.Get(actorContextKey).(actor.Actor); ok {
		return a
	}
	return actor.Anonymous()
}
