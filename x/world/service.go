//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package world

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
)

var tracer = otel.Tracer("world")

// Service is the interface for world service
type Service interface {
	GetPublic(ctx context.Context) ([]core.World, error)
	GetByOwner(ctx context.Context, owner string) ([]core.World, error)
	Get(ctx context.Context, id string) (core.World, error)
	Create(ctx context.Context, requester string, draft Draft) (core.World, error)
	Update(ctx context.Context, requester string, id string, patch Patch) (core.World, error)
	Delete(ctx context.Context, requester string, id string) (core.World, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	guard      guard.Service
}

// NewService creates a new world service
func NewService(repository Repository, guard guard.Service) Service {
	return &service{repository, guard}
}

func (s *service) GetPublic(ctx context.Context) ([]core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.GetPublic")
	defer span.End()

	return s.repository.GetPublic(ctx)
}

func (s *service) GetByOwner(ctx context.Context, owner string) ([]core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.GetByOwner")
	defer span.End()

	return s.repository.GetByOwner(ctx, owner)
}

func (s *service) Get(ctx context.Context, id string) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "World.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Create validates the draft and persists a new world owned by the
// requester.
func (s *service) Create(ctx context.Context, requester string, draft Draft) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.Create")
	defer span.End()

	var fields []core.FieldError
	if strings.TrimSpace(draft.Name) == "" {
		fields = append(fields, core.FieldError{Param: "name", Msg: "Name is required"})
	}
	if strings.TrimSpace(draft.Description) == "" {
		fields = append(fields, core.FieldError{Param: "description", Msg: "Description is required"})
	}
	if len(fields) > 0 {
		return core.World{}, core.NewErrorValidation(fields...)
	}

	world := core.World{
		Name:        strings.TrimSpace(draft.Name),
		Description: draft.Description,
		Owner:       requester,
		IsPublic:    draft.IsPublic,
		Tags:        draft.Tags,
	}

	return s.repository.Create(ctx, world)
}

// Update merges the supplied fields into the stored world. Owner and
// creation date never change.
func (s *service) Update(ctx context.Context, requester string, id string, patch Patch) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.Update")
	defer span.End()

	world, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	if err := s.guard.Authorize(ctx, requester, world); err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	if patch.Name != nil {
		world.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		world.Description = *patch.Description
	}
	if patch.IsPublic != nil {
		world.IsPublic = *patch.IsPublic
	}
	if patch.Tags != nil {
		world.Tags = *patch.Tags
	}
	if patch.Collaborators != nil {
		world.Collaborators = *patch.Collaborators
	}
	if patch.Timeline != nil {
		world.Timeline = *patch.Timeline
	}

	return s.repository.Update(ctx, world)
}

func (s *service) Delete(ctx context.Context, requester string, id string) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Service.Delete")
	defer span.End()

	world, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	if err := s.guard.Authorize(ctx, requester, world); err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	return s.repository.Delete(ctx, id)
}
