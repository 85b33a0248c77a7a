// Package guard implements the ownership check shared by every mutation
// route: the requester must be the owner of the World the entity belongs to.
package guard

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/core"
)

var tracer = otel.Tracer("guard")

// WorldResolver fetches a World by id. Satisfied by world.Repository.
type WorldResolver interface {
	Get(ctx context.Context, id string) (core.World, error)
}

// Service authorizes mutations against the owning World.
type Service interface {
	Authorize(ctx context.Context, requester string, ref core.WorldRef) error
}

type service struct {
	worlds WorldResolver
}

// NewService creates a new guard service
func NewService(worlds WorldResolver) Service {
	return &service{worlds}
}

// Authorize resolves the entity's owning World and compares its owner with
// the requester. The World missing is NotFound, a mismatched owner is
// PermissionDenied. Nothing has been written when either is returned.
func (s *service) Authorize(ctx context.Context, requester string, ref core.WorldRef) error {
	ctx, span := tracer.Start(ctx, "Guard.Service.Authorize")
	defer span.End()

	world, err := s.worlds.Get(ctx, ref.OwningWorld())
	if err != nil {
		span.RecordError(err)
		return err
	}

	if world.Owner != requester {
		return core.NewErrorPermissionDenied()
	}

	return nil
}
