package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	SessionKeyPrefix = "session:%s"
	UserKeyPrefix    = "user:%d"
)

const (
	// SessionTTL matches the lifetime of issued auth tokens.
	SessionTTL = 7 * 24 * time.Hour
	UserTTL    = 5 * time.Minute
)

func SessionKey(rememberToken string) string {
	return fmt.Sprintf(SessionKeyPrefix, rememberToken)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// StoreSession maps a remember token to its user for the session lifetime.
// Sessions are advisory: Redis being down never blocks a login.
func StoreSession(ctx context.Context, rememberToken string, userID uint) {
	if client == nil || rememberToken == "" {
		return
	}
	client.Set(ctx, SessionKey(rememberToken), strconv.FormatUint(uint64(userID), 10), SessionTTL)
}

// LookupSession returns the user ID stored for a remember token, or 0 when the
// session is unknown or Redis is unavailable.
func LookupSession(ctx context.Context, rememberToken string) uint {
	if client == nil || rememberToken == "" {
		return 0
	}
	val, err := client.Get(ctx, SessionKey(rememberToken)).Result()
	if err != nil {
		return 0
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// DropSession removes the remember token mapping, e.g. on logout.
func DropSession(ctx context.Context, rememberToken string) {
	if client == nil || rememberToken == "" {
		return
	}
	client.Del(ctx, SessionKey(rememberToken))
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
