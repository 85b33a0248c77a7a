//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package world

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

// Repository is the interface for world repository
type Repository interface {
	Create(ctx context.Context, world core.World) (core.World, error)
	Get(ctx context.Context, id string) (core.World, error)
	GetPublic(ctx context.Context) ([]core.World, error)
	GetByOwner(ctx context.Context, owner string) ([]core.World, error)
	Update(ctx context.Context, world core.World) (core.World, error)
	Delete(ctx context.Context, id string) (core.World, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new world repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.World{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count worlds",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: "world_count", Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.World{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count worlds",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: "world_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of worlds
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("world_count")
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

// Create persists a new world. An id is assigned when the caller supplied
// none.
func (r *repository) Create(ctx context.Context, world core.World) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.Create")
	defer span.End()

	if world.ID == "" {
		world.ID = xid.New().String()
	}
	if world.Collaborators == nil {
		world.Collaborators = []string{}
	}
	if world.Tags == nil {
		world.Tags = []string{}
	}

	if err := r.db.WithContext(ctx).Create(&world).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.World{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.World{}, err
	}

	r.refreshCount(ctx)

	return world, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.Get")
	defer span.End()

	var world core.World
	if err := r.db.WithContext(ctx).First(&world, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.World{}, core.NewErrorNotFound("World")
		}
		span.RecordError(err)
		return core.World{}, err
	}

	return world, nil
}

// GetPublic returns the publicly shared worlds, newest first.
func (r *repository) GetPublic(ctx context.Context) ([]core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.GetPublic")
	defer span.End()

	var worlds []core.World
	if err := r.db.WithContext(ctx).Where("is_public = ?", true).Order("c_date DESC").Find(&worlds).Error; err != nil {
		span.RecordError(err)
		return []core.World{}, err
	}
	if worlds == nil {
		return []core.World{}, nil
	}

	return worlds, nil
}

// GetByOwner returns every world the owner holds, newest first.
func (r *repository) GetByOwner(ctx context.Context, owner string) ([]core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.GetByOwner")
	defer span.End()

	var worlds []core.World
	if err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("c_date DESC").Find(&worlds).Error; err != nil {
		span.RecordError(err)
		return []core.World{}, err
	}
	if worlds == nil {
		return []core.World{}, nil
	}

	return worlds, nil
}

func (r *repository) Update(ctx context.Context, world core.World) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.Update")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(&world).Error; err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	return world, nil
}

// Delete removes the world document only. Children keep their world
// reference; there is no cascade.
func (r *repository) Delete(ctx context.Context, id string) (core.World, error) {
	ctx, span := tracer.Start(ctx, "World.Repository.Delete")
	defer span.End()

	var world core.World
	if err := r.db.WithContext(ctx).First(&world, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.World{}, core.NewErrorNotFound("World")
		}
		span.RecordError(err)
		return core.World{}, err
	}

	if err := r.db.WithContext(ctx).Delete(&core.World{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return core.World{}, err
	}

	r.refreshCount(ctx)

	return world, nil
}
