//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package location

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
)

var tracer = otel.Tracer("location")

// Service is the interface for location service
type Service interface {
	GetByWorld(ctx context.Context, worldID string) ([]core.Location, error)
	Get(ctx context.Context, id string) (core.Location, error)
	Create(ctx context.Context, requester string, draft Draft) (core.Location, error)
	Update(ctx context.Context, requester string, id string, patch Patch) (core.Location, error)
	Delete(ctx context.Context, requester string, id string) (core.Location, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	guard      guard.Service
}

// NewService creates a new location service
func NewService(repository Repository, guard guard.Service) Service {
	return &service{repository, guard}
}

func (s *service) GetByWorld(ctx context.Context, worldID string) ([]core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.GetByWorld")
	defer span.End()

	return s.repository.GetByWorld(ctx, worldID)
}

func (s *service) Get(ctx context.Context, id string) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Create validates the draft, checks world ownership, and persists the
// location.
func (s *service) Create(ctx context.Context, requester string, draft Draft) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.Create")
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

	locationType := draft.Type
	if locationType == "" {
		locationType = core.LocationTypeOther
	} else if !locationType.Valid() {
		fields = append(fields, core.FieldError{Param: "type", Msg: "Invalid location type"})
	}

	if len(fields) > 0 {
		return core.Location{}, core.NewErrorValidation(fields...)
	}

	location := core.Location{
		Name:              strings.TrimSpace(draft.Name),
		Description:       draft.Description,
		World:             draft.World,
		Type:              locationType,
		Climate:           draft.Climate,
		Population:        draft.Population,
		Government:        draft.Government,
		Economy:           draft.Economy,
		Culture:           draft.Culture,
		History:           draft.History,
		NotableLocations:  draft.NotableLocations,
		NotableCharacters: draft.NotableCharacters,
		Images:            draft.Images,
		Coordinates:       draft.Coordinates,
	}

	if err := s.guard.Authorize(ctx, requester, location); err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	return s.repository.Create(ctx, location)
}

// Update merges the supplied fields into the stored location. A supplied
// type must be a member of the enum.
func (s *service) Update(ctx context.Context, requester string, id string, patch Patch) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.Update")
	defer span.End()

	location, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	if err := s.guard.Authorize(ctx, requester, location); err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	if patch.Type != nil {
		if !patch.Type.Valid() {
			return core.Location{}, core.NewErrorValidation(
				core.FieldError{Param: "type", Msg: "Invalid location type"},
			)
		}
		location.Type = *patch.Type
	}
	if patch.Name != nil {
		location.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		location.Description = *patch.Description
	}
	if patch.Climate != nil {
		location.Climate = *patch.Climate
	}
	if patch.Population != nil {
		location.Population = *patch.Population
	}
	if patch.Government != nil {
		location.Government = *patch.Government
	}
	if patch.Economy != nil {
		location.Economy = *patch.Economy
	}
	if patch.Culture != nil {
		location.Culture = *patch.Culture
	}
	if patch.History != nil {
		location.History = *patch.History
	}
	if patch.NotableLocations != nil {
		location.NotableLocations = *patch.NotableLocations
	}
	if patch.NotableCharacters != nil {
		location.NotableCharacters = *patch.NotableCharacters
	}
	if patch.Images != nil {
		location.Images = *patch.Images
	}
	if patch.Coordinates != nil {
		location.Coordinates = *patch.Coordinates
	}

	return s.repository.Update(ctx, location)
}

func (s *service) Delete(ctx context.Context, requester string, id string) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Service.Delete")
	defer span.End()

	location, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	if err := s.guard.Authorize(ctx, requester, location); err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	return s.repository.Delete(ctx, id)
}
