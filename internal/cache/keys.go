package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	storeKeyPrefix = "store:%d"
	itemKeyPrefix  = "item:%s"
)

// StoreTTL bounds how stale a cached store lookup may get. Store rows only
// change on create, so a short TTL is purely a safety net.
const StoreTTL = 10 * time.Minute

// ItemTTL is shorter because item payloads nest tags; writes invalidate
// explicitly, the TTL only covers missed invalidations.
const ItemTTL = 5 * time.Minute

func StoreKey(storeID uint) string {
	return fmt.Sprintf(storeKeyPrefix, storeID)
}

func ItemKey(name string) string {
	return fmt.Sprintf(itemKeyPrefix, name)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateStore(ctx context.Context, storeID uint) {
	Invalidate(ctx, StoreKey(storeID))
}

func InvalidateItem(ctx context.Context, name string) {
	Invalidate(ctx, ItemKey(name))
}
