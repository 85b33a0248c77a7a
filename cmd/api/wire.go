//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/worldloom/worldloom/x/auth"
	"github.com/worldloom/worldloom/x/character"
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/item"
	"github.com/worldloom/worldloom/x/location"
	"github.com/worldloom/worldloom/x/userkv"
	"github.com/worldloom/worldloom/x/util"
	"github.com/worldloom/worldloom/x/world"
)

var guardProvider = wire.NewSet(guard.NewService, provideWorldResolver, world.NewRepository)

var worldServiceProvider = wire.NewSet(world.NewService, guardProvider)
var characterServiceProvider = wire.NewSet(character.NewService, character.NewRepository, guardProvider)
var locationServiceProvider = wire.NewSet(location.NewService, location.NewRepository, guardProvider)
var itemServiceProvider = wire.NewSet(item.NewService, item.NewRepository, guardProvider)
var userkvServiceProvider = wire.NewSet(userkv.NewService, userkv.NewRepository)

func SetupWorldService(db *gorm.DB, mc *memcache.Client) world.Service {
	wire.Build(worldServiceProvider)
	return nil
}

func SetupCharacterService(db *gorm.DB, mc *memcache.Client) character.Service {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupLocationService(db *gorm.DB, mc *memcache.Client) location.Service {
	wire.Build(locationServiceProvider)
	return nil
}

func SetupItemService(db *gorm.DB, mc *memcache.Client) item.Service {
	wire.Build(itemServiceProvider)
	return nil
}

func SetupUserkvService(rdb *redis.Client) userkv.Service {
	wire.Build(userkvServiceProvider)
	return nil
}

func SetupAuthService(config util.Config) auth.Service {
	wire.Build(auth.NewService)
	return nil
}
