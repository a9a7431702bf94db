package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	UserCardsKeyPrefix = "user:%d:cards"
)

const (
	UserTTL      = 5 * time.Minute
	UserCardsTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func UserCardsKey(userID uint) string {
	return fmt.Sprintf(UserCardsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateUserCards drops the cached owner card list. Called on every
// card write so List never serves a stale view after a mutation.
func InvalidateUserCards(ctx context.Context, userID uint) {
	Invalidate(ctx, UserCardsKey(userID))
}
