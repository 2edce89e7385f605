package infrastructure_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/infrastructure"
	mock_domain "github.com/na2na-p/defectrack/tests/domain"
	"go.uber.org/mock/gomock"
)

func mustUser(t *testing.T, id int64, username, role string, active bool) *domain.User {
	t.Helper()
	user, err := domain.ReconstructUser(id, username, username+"@example.com", "$2a$10$hash", role, active)
	if err != nil {
		t.Fatalf("failed to reconstruct user: %v", err)
	}
	return user
}

func TestCachingUserRepository_FindByUsername(t *testing.T) {
	type fields struct {
		repo        func(ctrl *gomock.Controller) domain.UserRepository
		cacheClient func(ctrl *gomock.Controller) domain.CacheClient
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr error
	}{
		{
			name: "正常系: キャッシュヒット時はデータベースへ問い合わせない",
			fields: fields{
				repo: func(ctrl *gomock.Controller) domain.UserRepository {
					return mock_domain.NewMockUserRepository(ctrl)
				},
				cacheClient: func(ctrl *gomock.Controller) domain.CacheClient {
					mock := mock_domain.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "defectrack:user:name:alice", gomock.Any()).DoAndReturn(
						func(ctx context.Context, key string, dest interface{}) error {
							cached := map[string]interface{}{
								"id":              int64(1),
								"username":        "alice",
								"email":           "alice@example.com",
								"hashed_password": "$2a$10$hash",
								"role":            "engineer",
								"active":          true,
							}
							jsonData, _ := json.Marshal(cached)
							return json.Unmarshal(jsonData, dest)
						},
					)
					return mock
				},
			},
			wantErr: nil,
		},
		{
			name: "正常系: キャッシュミス時はデータベースから取得してキャッシュに書き込む",
			fields: fields{
				repo: func(ctrl *gomock.Controller) domain.UserRepository {
					mock := mock_domain.NewMockUserRepository(ctrl)
					mock.EXPECT().FindByUsername(gomock.Any(), "alice").Return(mustUser(t, 1, "alice", "engineer", true), nil)
					return mock
				},
				cacheClient: func(ctrl *gomock.Controller) domain.CacheClient {
					mock := mock_domain.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "defectrack:user:name:alice", gomock.Any()).Return(errors.New("cache miss"))
					mock.EXPECT().SetJSON(gomock.Any(), "defectrack:user:id:1", gomock.Any(), gomock.Any()).Return(nil)
					mock.EXPECT().SetJSON(gomock.Any(), "defectrack:user:name:alice", gomock.Any(), gomock.Any()).Return(nil)
					return mock
				},
			},
			wantErr: nil,
		},
		{
			name: "異常系: キャッシュミスかつデータベースにも存在しない場合、ErrNotFoundが返る",
			fields: fields{
				repo: func(ctrl *gomock.Controller) domain.UserRepository {
					mock := mock_domain.NewMockUserRepository(ctrl)
					mock.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, domain.ErrNotFound)
					return mock
				},
				cacheClient: func(ctrl *gomock.Controller) domain.CacheClient {
					mock := mock_domain.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "defectrack:user:name:alice", gomock.Any()).Return(errors.New("cache miss"))
					return mock
				},
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			keyGenerator := mock_domain.NewMockCacheKeyGenerator(ctrl)
			keyGenerator.EXPECT().UserByUsernameKey(gomock.Any()).DoAndReturn(func(username string) string {
				return "defectrack:user:name:" + username
			}).AnyTimes()
			keyGenerator.EXPECT().UserByIDKey(gomock.Any()).DoAndReturn(func(id int64) string {
				return "defectrack:user:id:1"
			}).AnyTimes()

			cacheConfig := mock_domain.NewMockCacheConfig(ctrl)
			cacheConfig.EXPECT().UserTTL().Return(5 * time.Minute).AnyTimes()

			repo := infrastructure.NewCachingUserRepository(
				tt.fields.repo(ctrl),
				tt.fields.cacheClient(ctrl),
				keyGenerator,
				cacheConfig,
			)

			got, err := repo.FindByUsername(context.Background(), "alice")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindByUsername() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.Username().String() != "alice" {
				t.Errorf("Username() = %v, want alice", got.Username().String())
			}
		})
	}
}

func TestCachingUserRepository_Update(t *testing.T) {
	t.Run("正常系: 更新後に両方のキャッシュキーが無効化される", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		user := mustUser(t, 1, "alice", "manager", true)

		userRepo := mock_domain.NewMockUserRepository(ctrl)
		userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)

		cacheClient := mock_domain.NewMockCacheClient(ctrl)
		cacheClient.EXPECT().Delete(gomock.Any(), "defectrack:user:id:1").Return(nil)
		cacheClient.EXPECT().Delete(gomock.Any(), "defectrack:user:name:alice").Return(nil)

		keyGenerator := mock_domain.NewMockCacheKeyGenerator(ctrl)
		keyGenerator.EXPECT().UserByIDKey(int64(1)).Return("defectrack:user:id:1")
		keyGenerator.EXPECT().UserByUsernameKey("alice").Return("defectrack:user:name:alice")

		repo := infrastructure.NewCachingUserRepository(userRepo, cacheClient, keyGenerator, mock_domain.NewMockCacheConfig(ctrl))

		if err := repo.Update(context.Background(), user); err != nil {
			t.Fatalf("want no error, but got %v", err)
		}
	})
}
