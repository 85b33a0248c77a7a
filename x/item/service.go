//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package item

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/guard"
)

var tracer = otel.Tracer("item")

// Service is the interface for item service
type Service interface {
	GetByWorld(ctx context.Context, worldID string) ([]core.Item, error)
	Get(ctx context.Context, id string) (core.Item, error)
	Create(ctx context.Context, requester string, draft Draft) (core.Item, error)
	Update(ctx context.Context, requester string, id string, patch Patch) (core.Item, error)
	Delete(ctx context.Context, requester string, id string) (core.Item, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	guard      guard.Service
}

// NewService creates a new item service
func NewService(repository Repository, guard guard.Service) Service {
	return &service{repository, guard}
}

func (s *service) GetByWorld(ctx context.Context, worldID string) ([]core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.GetByWorld")
	defer span.End()

	return s.repository.GetByWorld(ctx, worldID)
}

func (s *service) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Create validates the draft, checks world ownership, and persists the
// item.
func (s *service) Create(ctx context.Context, requester string, draft Draft) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Create")
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

	itemType := draft.Type
	if itemType == "" {
		itemType = core.ItemTypeOther
	} else if !itemType.Valid() {
		fields = append(fields, core.FieldError{Param: "type", Msg: "Invalid item type"})
	}

	rarity := draft.Rarity
	if rarity == "" {
		rarity = core.RarityCommon
	} else if !rarity.Valid() {
		fields = append(fields, core.FieldError{Param: "rarity", Msg: "Invalid item rarity"})
	}

	if len(fields) > 0 {
		return core.Item{}, core.NewErrorValidation(fields...)
	}

	item := core.Item{
		Name:         strings.TrimSpace(draft.Name),
		Description:  draft.Description,
		World:        draft.World,
		Type:         itemType,
		Rarity:       rarity,
		Properties:   draft.Properties,
		History:      draft.History,
		CurrentOwner: draft.CurrentOwner,
		Location:     draft.Location,
		Images:       draft.Images,
	}

	if err := s.guard.Authorize(ctx, requester, item); err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	return s.repository.Create(ctx, item)
}

// Update merges the supplied fields into the stored item. Supplied type
// and rarity must be enum members.
func (s *service) Update(ctx context.Context, requester string, id string, patch Patch) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Update")
	defer span.End()

	item, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	if err := s.guard.Authorize(ctx, requester, item); err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	var fields []core.FieldError
	if patch.Type != nil && !patch.Type.Valid() {
		fields = append(fields, core.FieldError{Param: "type", Msg: "Invalid item type"})
	}
	if patch.Rarity != nil && !patch.Rarity.Valid() {
		fields = append(fields, core.FieldError{Param: "rarity", Msg: "Invalid item rarity"})
	}
	if len(fields) > 0 {
		return core.Item{}, core.NewErrorValidation(fields...)
	}

	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.Rarity != nil {
		item.Rarity = *patch.Rarity
	}
	if patch.Properties != nil {
		item.Properties = *patch.Properties
	}
	if patch.History != nil {
		item.History = *patch.History
	}
	if patch.CurrentOwner != nil {
		item.CurrentOwner = *patch.CurrentOwner
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Images != nil {
		item.Images = *patch.Images
	}

	return s.repository.Update(ctx, item)
}

func (s *service) Delete(ctx context.Context, requester string, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Service.Delete")
	defer span.End()

	item, err := s.repository.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	if err := s.guard.Authorize(ctx, requester, item); err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	return s.repository.Delete(ctx, id)
}
