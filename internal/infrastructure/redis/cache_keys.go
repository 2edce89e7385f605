// Package redis provides Redis cache key management and TTL definitions.
// All cache keys and TTLs should be defined in this file to ensure centralized management.
package redis

import (
	"fmt"
	"time"
)

// Cache Key Prefixes
// All Redis cache key prefixes are defined here to ensure consistent naming
// and centralized management across the application.
const (
	// UserByUsernameKeyPrefix is the prefix for user cache keys looked up by username
	// Format: defectrack:user:name:{username}
	UserByUsernameKeyPrefix = "defectrack:user:name:"

	// UserByIDKeyPrefix is the prefix for user cache keys looked up by id
	// Format: defectrack:user:id:{id}
	UserByIDKeyPrefix = "defectrack:user:id:"
)

// Cache TTL Definitions
const (
	// UserTTL is the TTL for cached users (5 minutes).
	// 毎リクエストの認証で参照されるため短めに保ち、ロール変更や
	// 無効化の反映遅延を最大でもこの時間に抑える。
	UserTTL = 5 * time.Minute
)

// UserByUsernameKey generates a cache key for a user looked up by username
func UserByUsernameKey(username string) string {
	return UserByUsernameKeyPrefix + username
}

// UserByIDKey generates a cache key for a user looked up by id
func UserByIDKey(id int64) string {
	return fmt.Sprintf("%s%d", UserByIDKeyPrefix, id)
}
