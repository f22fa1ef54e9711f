// Package notify 在每次集合变更后广播通知，供其他进程/页面收到后重新拉取
// 通知只带集合名，不带具体变更内容；送达失败只记日志，绝不让变更本身失败
package notify

import (
	"context"
	"log/slog"

	"ngo-admin-system/internal/global/cache"
	"ngo-admin-system/internal/global/logger"

	"github.com/redis/go-redis/v9"
)

// Channel 集合变更通知使用的 Redis 频道
const Channel = "ngo:collection-changed"

var log *slog.Logger

func Init() {
	log = logger.New("Notify")
}

// CollectionChanged 广播某集合已发生变更
func CollectionChanged(ctx context.Context, collection string) {
	if cache.Client == nil {
		// 测试或未接 Redis 的场景直接跳过
		return
	}
	if err := cache.Client.Publish(ctx, Channel, collection).Err(); err != nil {
		if log != nil {
			log.Warn("集合变更通知发送失败", "collection", collection, "error", err)
		}
	}
}

// Subscribe 订阅集合变更通知，返回的 PubSub 由调用方负责 Close
func Subscribe(ctx context.Context) *redis.PubSub {
	return cache.Client.Subscribe(ctx, Channel)
}
