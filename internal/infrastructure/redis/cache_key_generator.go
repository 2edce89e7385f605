package redis

import "time"

type CacheKeyGeneratorImpl struct{}

func NewCacheKeyGenerator() *CacheKeyGeneratorImpl {
	return &CacheKeyGeneratorImpl{}
}

func (g *CacheKeyGeneratorImpl) UserByUsernameKey(username string) string {
	return UserByUsernameKey(username)
}

func (g *CacheKeyGeneratorImpl) UserByIDKey(id int64) string {
	return UserByIDKey(id)
}

type CacheConfigImpl struct{}

func NewCacheConfig() *CacheConfigImpl {
	return &CacheConfigImpl{}
}

func (c *CacheConfigImpl) UserTTL() time.Duration {
	return UserTTL
}
