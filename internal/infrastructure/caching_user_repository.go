package infrastructure

import (
	"context"

	"github.com/na2na-p/defectrack/internal/domain"
)

// CachingUserRepository はユーザー取得をキャッシュで覆うデコレータです。
// 認証のたびにユーザー名で参照されるため、FindByUsername が主なヒット経路に
// なります。更新時は両方のキーを無効化します。
type CachingUserRepository struct {
	repo         domain.UserRepository
	cacheClient  domain.CacheClient
	keyGenerator domain.CacheKeyGenerator
	cacheConfig  domain.CacheConfig
}

func NewCachingUserRepository(
	repo domain.UserRepository,
	cacheClient domain.CacheClient,
	keyGenerator domain.CacheKeyGenerator,
	cacheConfig domain.CacheConfig,
) *CachingUserRepository {
	return &CachingUserRepository{
		repo:         repo,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		cacheConfig:  cacheConfig,
	}
}

func (r *CachingUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	cacheKey := r.keyGenerator.UserByIDKey(id)

	var cached cachedUser
	if err := r.cacheClient.GetJSON(ctx, cacheKey, &cached); err == nil {
		if user, reconstructErr := cached.toDomain(); reconstructErr == nil {
			return user, nil
		}
	}

	user, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cacheUser(ctx, user)
	return user, nil
}

func (r *CachingUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	cacheKey := r.keyGenerator.UserByUsernameKey(username)

	var cached cachedUser
	if err := r.cacheClient.GetJSON(ctx, cacheKey, &cached); err == nil {
		if user, reconstructErr := cached.toDomain(); reconstructErr == nil {
			return user, nil
		}
	}

	user, err := r.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	r.cacheUser(ctx, user)
	return user, nil
}

// FindByEmail は重複チェックにのみ使われるためキャッシュしない
func (r *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.repo.FindByEmail(ctx, email)
}

func (r *CachingUserRepository) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *CachingUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	saved, err := r.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	r.cacheUser(ctx, saved)
	return saved, nil
}

func (r *CachingUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.repo.Update(ctx, user); err != nil {
		return err
	}

	// ロール変更や無効化を即座に反映させるため古いエントリを捨てる
	_ = r.cacheClient.Delete(ctx, r.keyGenerator.UserByIDKey(user.ID()))
	_ = r.cacheClient.Delete(ctx, r.keyGenerator.UserByUsernameKey(user.Username().String()))
	return nil
}

func (r *CachingUserRepository) cacheUser(ctx context.Context, user *domain.User) {
	cached := cachedUser{
		ID:             user.ID(),
		Username:       user.Username().String(),
		Email:          user.Email().String(),
		HashedPassword: user.HashedPassword(),
		Role:           user.Role().String(),
		Active:         user.IsActive(),
	}
	ttl := r.cacheConfig.UserTTL()
	_ = r.cacheClient.SetJSON(ctx, r.keyGenerator.UserByIDKey(user.ID()), cached, ttl)
	_ = r.cacheClient.SetJSON(ctx, r.keyGenerator.UserByUsernameKey(cached.Username), cached, ttl)
}

type cachedUser struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password"`
	Role           string `json:"role"`
	Active         bool   `json:"active"`
}

func (c cachedUser) toDomain() (*domain.User, error) {
	return domain.ReconstructUser(c.ID, c.Username, c.Email, c.HashedPassword, c.Role, c.Active)
}
