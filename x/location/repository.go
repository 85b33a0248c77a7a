//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package location

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

// Repository is the interface for location repository
type Repository interface {
	Create(ctx context.Context, location core.Location) (core.Location, error)
	Get(ctx context.Context, id string) (core.Location, error)
	GetByWorld(ctx context.Context, worldID string) ([]core.Location, error)
	Update(ctx context.Context, location core.Location) (core.Location, error)
	Delete(ctx context.Context, id string) (core.Location, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new location repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Location{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count locations",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: "location_count", Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Location{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count locations",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: "location_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of locations
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("location_count")
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

func (r *repository) Create(ctx context.Context, location core.Location) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.Create")
	defer span.End()

	if location.ID == "" {
		location.ID = xid.New().String()
	}
	if location.NotableCharacters == nil {
		location.NotableCharacters = []string{}
	}

	if err := r.db.WithContext(ctx).Create(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Location{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Location{}, err
	}

	r.refreshCount(ctx)

	return location, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.Get")
	defer span.End()

	var location core.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Location{}, core.NewErrorNotFound("Location")
		}
		span.RecordError(err)
		return core.Location{}, err
	}

	return location, nil
}

// GetByWorld returns the locations of a world ordered by name. An unknown
// world yields an empty slice, not an error.
func (r *repository) GetByWorld(ctx context.Context, worldID string) ([]core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.GetByWorld")
	defer span.End()

	var locations []core.Location
	if err := r.db.WithContext(ctx).Where("world = ?", worldID).Order("name ASC").Find(&locations).Error; err != nil {
		span.RecordError(err)
		return []core.Location{}, err
	}
	if locations == nil {
		return []core.Location{}, nil
	}

	return locations, nil
}

func (r *repository) Update(ctx context.Context, location core.Location) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.Update")
	defer span.End()

	if err := r.db.WithContext(ctx).Save(&location).Error; err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	return location, nil
}

func (r *repository) Delete(ctx context.Context, id string) (core.Location, error) {
	ctx, span := tracer.Start(ctx, "Location.Repository.Delete")
	defer span.End()

	var location core.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Location{}, core.NewErrorNotFound("Location")
		}
		span.RecordError(err)
		return core.Location{}, err
	}

	if err := r.db.WithContext(ctx).Delete(&core.Location{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return core.Location{}, err
	}

	r.refreshCount(ctx)

	return location, nil
}
