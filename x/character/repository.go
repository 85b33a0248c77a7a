//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package character

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/rs/xid"
	"gorm.io/gorm"

	"github.com/worldloom/worldloom/core"
)

// Repository is the interface for character repository
type Repository interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	Get(ctx context.Context, id string) (core.Character, error)
	GetByWorld(ctx context.Context, worldID string) ([]core.Character, error)
	Update(ctx context.Context, character core.Character) (core.Character, error)
	Delete(ctx context.Context, id string) (core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: "character_count", Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: "character_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("character_count")
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	if character.ID == "" {
		character.ID = xid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Character{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Character{}, err
	}

	r.refreshCount(ctx)

	return character, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Get")
	defer span.End()

	var character core.Character
	if err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound("Character")
		}
		span.RecordError(err)
		return core.Character{}, err
	}

	return character, nil
}

// GetByWorld returns the characters of a world ordered by name. An unknown
// world yields an empty slice, not an error.
func (r *repository) GetByWorld(ctx context.Context, worldID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetByWorld")
	defer span.End()

	var characters []core.Character
	if err := r.db.WithContext(ctx).Where("world = ?", worldID).Order("name ASC").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return []core.Character{}, err
	}
	if characters == nil {
		return []core.Character{}, nil
	}

	return characters, nil
}

func (r *repository) Update(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(&character).Error; err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	return character, nil
}

func (r *repository) Delete(ctx context.Context, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	var character core.Character
	if err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound("Character")
		}
		span.RecordError(err)
		return core.Character{}, err
	}

	if err := r.db.WithContext(ctx).Delete(&core.Character{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	r.refreshCount(ctx)

	return character, nil
}
