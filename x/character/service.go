//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package character

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
)

var tracer = otel.Tracer("character")

// Service is the interface for character service
type Service interface {
	GetByWorld(ctx context.Context, worldID string) ([]core.Character, error)
	Get(ctx context.Context, id string) (core.Character, error)
	Create(ctx context.Context, requester string, draft Draft) (core.Character, error)
	Update(ctx context.Context, requester string, id string, patch Patch) (core.Character, error)
	Delete(ctx context.Context, requester string, id string) (core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	guard      guard.Service
}

// NewService creates a new character service
func NewService(repository Repository, guard guard.Service) Service {
	return &service{repository, guard}
}

func (s *service) GetByWorld(ctx context.Context, worldID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.GetByWorld")
	defer span.End()

	return s.repository.GetByWorld(ctx, worldID)
}

func (s *service) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Create validates the draft, checks that the requester owns the target
// world, and persists the character. Nothing is written when either check
// fails.
func (s *service) Create(ctx context.Context, requester string, draft Draft) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	var fields []core.FieldError
	if strings.TrimSpace(draft.Name) == "" {
		fields = append(fields, core.FieldError{Param: "name", Msg: "Name is required"})
	}
	if strings.TrimSpace(draft.Description) == "" {
		fields = append(fields, core.FieldError{Param: "description", Msg: "Description is required"})
	}
	if strings.TrimSpace(draft.World) == "" {
		fields = append(fields, core.FieldError{Param: "world", Msg: "World ID is required"})
	}
	if len(fields) > 0 {
		return core.Character{}, core.NewErrorValidation(fields...)
	}

	character := core.Character{
		Name:          strings.TrimSpace(draft.Name),
		Description:   draft.Description,
		World:         draft.World,
		Race:          draft.Race,
		Class:         draft.Class,
		Age:           draft.Age,
		Gender:        draft.Gender,
		Appearance:    draft.Appearance,
		Personality:   draft.Personality,
		Background:    draft.Background,
		Abilities:     draft.Abilities,
		Relationships: draft.Relationships,
		Timeline:      draft.Timeline,
		Images:        draft.Images,
	}

	if err := s.guard.Authorize(ctx, requester, character); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	return s.repository.Create(ctx, character)
}

// Update merges the supplied fields into the stored character.
func (s *service) Update(ctx context.Context, requester string, id string, patch Patch) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Update")
	defer span.End()

	character, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	if err := s.guard.Authorize(ctx, requester, character); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	if patch.Name != nil {
		character.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		character.Description = *patch.Description
	}
	if patch.Race != nil {
		character.Race = *patch.Race
	}
	if patch.Class != nil {
		character.Class = *patch.Class
	}
	if patch.Age != nil {
		character.Age = *patch.Age
	}
	if patch.Gender != nil {
		character.Gender = *patch.Gender
	}
	if patch.Appearance != nil {
		character.Appearance = *patch.Appearance
	}
	if patch.Personality != nil {
		character.Personality = *patch.Personality
	}
	if patch.Background != nil {
		character.Background = *patch.Background
	}
	if patch.Abilities != nil {
		character.Abilities = *patch.Abilities
	}
	if patch.Relationships != nil {
		character.Relationships = *patch.Relationships
	}
	if patch.Timeline != nil {
		character.Timeline = *patch.Timeline
	}
	if patch.Images != nil {
		character.Images = *patch.Images
	}

	return s.repository.Update(ctx, character)
}

func (s *service) Delete(ctx context.Context, requester string, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	character, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	if err := s.guard.Authorize(ctx, requester, character); err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	return s.repository.Delete(ctx, id)
}
