package userkv

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/worldloom/worldloom/core"
)

// Repository is the interface for userkv repository
type Repository interface {
	Get(ctx context.Context, owner string, key string) (string, error)
	Upsert(ctx context.Context, owner string, key string, value string) error
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a new userkv repository
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) Get(ctx context.Context, owner string, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "UserKV.Repository.Get")
	defer span.End()

	value, err := r.rdb.Get(ctx, "userkv:"+owner+":"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", core.NewErrorNotFound("Key")
		}
		span.RecordError(err)
		return "", err
	}
	return value, nil
}

func (r *repository) Upsert(ctx context.Context, owner string, key string, value string) error {
	ctx, span := tracer.Start(ctx, "UserKV.Repository.Upsert")
	defer span.End()

	err := r.rdb.Set(ctx, "userkv:"+owner+":"+key, value, 0).Err()
	if err != nil {
		span.RecordError(err)
	}
	return err
}
