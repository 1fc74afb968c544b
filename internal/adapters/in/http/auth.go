package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Claims is the bearer token payload: sub is the caller id, role one of
// customer, admin or rider.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func jwtAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		SigningKey: []byte(secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing or invalid bearer token",
			})
		},
	})
}

// resolveActor turns verified claims into the commands.Actor handlers use.
func resolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return unauthorized(c)
		}

		role, err := commands.ParseRole(claims.Role)
		if err != nil {
			return unauthorized(c)
		}
		id, err := kernel.UUIDFromString(claims.Subject)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(actorKey, commands.Actor{Role: role, ID: id})
		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Token claims are invalid",
	})
}

func actorOf(c echo.Context) commands.Actor {
	actor, _ := c.Get(actorKey).(commands.Actor)
	return actor
}

func requireRole(c echo.Context, roles ...commands.Role) (commands.Actor, error) {
	actor := actorOf(c)
	for _, role := range roles {
		if actor.Role == role {
			return actor, nil
		}
	}
	return actor, commands.ErrRoleNotPermitted
}
