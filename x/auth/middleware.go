package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/worldloom/worldloom/core"
)

type Principal int

const (
	ISKNOWN = iota
	ISADMIN
)

// Identify resolves the requester from the Authorization header. A missing
// or invalid token is not an error here; route guards decide what requires
// identity.
func (s *service) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Identify")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			requester, err := s.ValidateToken(ctx, token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			c.Set(RequesterIdCtxKey, requester)
			span.SetAttributes(attribute.String("RequesterId", requester))

			for _, admin := range s.config.Worldloom.Admins {
				if admin == requester {
					c.Set(RequesterIsAdminCtxKey, true)
					break
				}
			}
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func Restrict(principal Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Restrict")
			defer span.End()

			requester, _ := c.Get(RequesterIdCtxKey).(string)

			switch principal {
			case ISKNOWN:
				if requester == "" {
					return c.JSON(http.StatusUnauthorized, core.MessageResponse{
						Msg: "No token, authorization denied",
					})
				}

			case ISADMIN:
				isAdmin, _ := c.Get(RequesterIsAdminCtxKey).(bool)
				if !isAdmin {
					return c.JSON(http.StatusForbidden, core.MessageResponse{
						Msg: "Admin only",
					})
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
