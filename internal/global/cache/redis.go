package cache

import (
	"context"

	"ngo-admin-system/config"
	"ngo-admin-system/tools"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	tools.PanicOnErr(Client.Ping(context.Background()).Err())
}
