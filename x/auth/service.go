// Package auth identifies the requesting principal from a bearer token.
// Token issuance lives elsewhere; this package only validates.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/x/util"
)

var tracer = otel.Tracer("auth")

// Service validates bearer tokens and exposes the identify middleware.
type Service interface {
	ValidateToken(ctx context.Context, token string) (string, error)
	Identify(next echo.HandlerFunc) echo.HandlerFunc
}

type service struct {
	config util.Config
}

// NewService creates a new auth service
func NewService(config util.Config) Service {
	return &service{config}
}

// ValidateToken checks the token signature and returns the subject user id.
func (s *service) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	_, span := tracer.Start(ctx, "Auth.Service.ValidateToken")
	defer span.End()

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.Worldloom.JwtSecret), nil
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if s.config.Worldloom.JwtIssuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != s.config.Worldloom.JwtIssuer {
			return "", fmt.Errorf("jwt is not issued by this service")
		}
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("jwt has no subject")
	}

	return subject, nil
}
