// Package userkv is a per-user key-value store. The front end keeps UI
// preferences here (list sort order, last page, active tab).
package userkv

import (
	"context"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("userkv")

// Service is the interface for userkv service
type Service interface {
	Get(ctx context.Context, owner string, key string) (string, error)
	Upsert(ctx context.Context, owner string, key string, value string) error
}

type service struct {
	repository Repository
}

// NewService creates a new userkv service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, owner string, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "UserKV.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, owner, key)
}

func (s *service) Upsert(ctx context.Context, owner string, key string, value string) error {
	ctx, span := tracer.Start(ctx, "UserKV.Service.Upsert")
	defer span.End()

	return s.repository.Upsert(ctx, owner, key, value)
}
