//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package item

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

// Repository is the interface for item repository
type Repository interface {
	Create(ctx context.Context, item core.Item) (core.Item, error)
	Get(ctx context.Context, id string) (core.Item, error)
	GetByWorld(ctx context.Context, worldID string) ([]core.Item, error)
	Update(ctx context.Context, item core.Item) (core.Item, error)
	Delete(ctx context.Context, id string) (core.Item, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new item repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Item{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count items",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: "item_count", Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Item{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count items",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: "item_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of items
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Count")
	defer span.End()

	cached, err := r.mc.Get("item_count")
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	count, err := strconv.ParseInt(string(cached.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

func (r *repository) Create(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Create")
	defer span.End()

	if item.ID == "" {
		item.ID = xid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Item{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Item{}, err
	}

	r.refreshCount(ctx)

	return item, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Get")
	defer span.End()

	var item core.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Item{}, core.NewErrorNotFound("Item")
		}
		span.RecordError(err)
		return core.Item{}, err
	}

	return item, nil
}

// GetByWorld returns the items of a world ordered by name. An unknown
// world yields an empty slice, not an error.
func (r *repository) GetByWorld(ctx context.Context, worldID string) ([]core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.GetByWorld")
	defer span.End()

	var items []core.Item
	if err := r.db.WithContext(ctx).Where("world = ?", worldID).Order("name ASC").Find(&items).Error; err != nil {
		span.RecordError(err)
		return []core.Item{}, err
	}
	if items == nil {
		return []core.Item{}, nil
	}

	return items, nil
}

func (r *repository) Update(ctx context.Context, item core.Item) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Update")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	return item, nil
}

func (r *repository) Delete(ctx context.Context, id string) (core.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Delete")
	defer span.End()

	var item core.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Item{}, core.NewErrorNotFound("Item")
		}
		span.RecordError(err)
		return core.Item{}, err
	}

	if err := r.db.WithContext(ctx).Delete(&core.Item{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return core.Item{}, err
	}

	r.refreshCount(ctx)

	return item, nil
}
