package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
	mock_domain "github.com/na2na-p/defectrack/tests/domain"
	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Register(t *testing.T) {
	type fields struct {
		userRepo func(ctrl *gomock.Controller) domain.UserRepository
		hasher   func(ctrl *gomock.Controller) domain.PasswordHasher
	}
	type args struct {
		input usecase.RegisterUserInput
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		wantRole domain.Role
		wantErr  error
	}{
		{
			name: "正常系: 登録されたユーザーのロールは常にobserverになる",
			fields: fields{
				userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
					mock := mock_domain.NewMockUserRepository(ctrl)
					mock.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, domain.ErrNotFound)
					mock.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, domain.ErrNotFound)
					mock.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, user *domain.User) (*domain.User, error) {
							return user, nil
						})
					return mock
				},
				hasher: func(ctrl *gomock.Controller) domain.PasswordHasher {
					mock := mock_domain.NewMockPasswordHasher(ctrl)
					mock.EXPECT().Hash("secret").Return("hashed", nil)
					return mock
				},
			},
			args: args{input: usecase.RegisterUserInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
				// リクエストボディでadminを要求しても無視される
				Role: "admin",
			}},
			wantRole: domain.RoleObserver,
			wantErr:  nil,
		},
		{
			name: "異常系: メールアドレスが重複している場合、ErrDuplicateEmailが返る",
			fields: fields{
				userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
					mock := mock_domain.NewMockUserRepository(ctrl)
					mock.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(mustReconstructUser(t, 9, "existing", "observer", true), nil)
					return mock
				},
				hasher: func(ctrl *gomock.Controller) domain.PasswordHasher {
					return mock_domain.NewMockPasswordHasher(ctrl)
				},
			},
			args: args{input: usecase.RegisterUserInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
			}},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "異常系: ユーザー名が重複している場合、ErrDuplicateUsernameが返る",
			fields: fields{
				userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
					mock := mock_domain.NewMockUserRepository(ctrl)
					mock.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, domain.ErrNotFound)
					mock.EXPECT().FindByUsername(gomock.Any(), "alice").Return(mustReconstructUser(t, 9, "alice", "observer", true), nil)
					return mock
				},
				hasher: func(ctrl *gomock.Controller) domain.PasswordHasher {
					return mock_domain.NewMockPasswordHasher(ctrl)
				},
			},
			args: args{input: usecase.RegisterUserInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
			}},
			wantErr: domain.ErrDuplicateUsername,
		},
		{
			name: "異常系: 不正なメールアドレスの場合、ErrInvalidEmailが返る",
			fields: fields{
				userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
					return mock_domain.NewMockUserRepository(ctrl)
				},
				hasher: func(ctrl *gomock.Controller) domain.PasswordHasher {
					return mock_domain.NewMockPasswordHasher(ctrl)
				},
			},
			args: args{input: usecase.RegisterUserInput{
				Username: "alice",
				Email:    "not-an-email",
				Password: "secret",
			}},
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewUserUseCase(tt.fields.userRepo(ctrl), tt.fields.hasher(ctrl), domain.NewPolicyEvaluator())

			got, err := uc.Register(context.Background(), tt.args.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}

			if got.Role() != tt.wantRole {
				t.Errorf("Role() = %v, want %v", got.Role(), tt.wantRole)
			}
		})
	}
}

func TestUserUseCase_Create(t *testing.T) {
	type args struct {
		actor *domain.Actor
		input usecase.RegisterUserInput
	}
	tests := []struct {
		name      string
		args      args
		setupRepo func(ctrl *gomock.Controller) domain.UserRepository
		wantRole  domain.Role
		wantErr   error
	}{
		{
			name: "正常系: マネージャーは指定したロールでユーザーを作成できる",
			args: args{
				actor: &domain.Actor{ID: 1, Role: domain.RoleManager, Active: true},
				input: usecase.RegisterUserInput{Username: "carol", Email: "carol@example.com", Password: "secret", Role: "engineer"},
			},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := mock_domain.NewMockUserRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), "carol@example.com").Return(nil, domain.ErrNotFound)
				mock.EXPECT().FindByUsername(gomock.Any(), "carol").Return(nil, domain.ErrNotFound)
				mock.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
				return mock
			},
			wantRole: domain.RoleEngineer,
			wantErr:  nil,
		},
		{
			name: "異常系: エンジニアはユーザーを作成できない",
			args: args{
				actor: &domain.Actor{ID: 1, Role: domain.RoleEngineer, Active: true},
				input: usecase.RegisterUserInput{Username: "carol", Email: "carol@example.com", Password: "secret", Role: "engineer"},
			},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				return mock_domain.NewMockUserRepository(ctrl)
			},
			wantErr: usecase.ErrAuthorizationDenied,
		},
		{
			name: "異常系: 不正なロールを指定した場合、ErrInvalidRoleが返る",
			args: args{
				actor: &domain.Actor{ID: 1, Role: domain.RoleAdmin, Active: true},
				input: usecase.RegisterUserInput{Username: "carol", Email: "carol@example.com", Password: "secret", Role: "root"},
			},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				return mock_domain.NewMockUserRepository(ctrl)
			},
			wantErr: domain.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := mock_domain.NewMockPasswordHasher(ctrl)
			if tt.wantErr == nil {
				hasher.EXPECT().Hash("secret").Return("hashed", nil)
			}
			uc := usecase.NewUserUseCase(tt.setupRepo(ctrl), hasher, domain.NewPolicyEvaluator())

			got, err := uc.Create(context.Background(), tt.args.actor, tt.args.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.Role() != tt.wantRole {
				t.Errorf("Role() = %v, want %v", got.Role(), tt.wantRole)
			}
		})
	}
}

func TestUserUseCase_UpdateRole(t *testing.T) {
	type args struct {
		actor *domain.Actor
		id    int64
		role  string
	}
	tests := []struct {
		name      string
		args      args
		setupRepo func(ctrl *gomock.Controller) domain.UserRepository
		wantErr   error
	}{
		{
			name: "正常系: マネージャーはロールを変更できる",
			args: args{actor: &domain.Actor{ID: 1, Role: domain.RoleManager, Active: true}, id: 2, role: "engineer"},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := mock_domain.NewMockUserRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(2)).Return(mustReconstructUser(t, 2, "bob", "observer", true), nil)
				mock.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			wantErr: nil,
		},
		{
			name: "異常系: 対象ユーザーが存在しない場合、404が認可より先に判定される",
			args: args{actor: &domain.Actor{ID: 1, Role: domain.RoleObserver, Active: true}, id: 99, role: "engineer"},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := mock_domain.NewMockUserRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, domain.ErrNotFound)
				return mock
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "異常系: オブザーバーはロールを変更できない",
			args: args{actor: &domain.Actor{ID: 1, Role: domain.RoleObserver, Active: true}, id: 2, role: "engineer"},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := mock_domain.NewMockUserRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(2)).Return(mustReconstructUser(t, 2, "bob", "observer", true), nil)
				return mock
			},
			wantErr: usecase.ErrAuthorizationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := mock_domain.NewMockPasswordHasher(ctrl)
			uc := usecase.NewUserUseCase(tt.setupRepo(ctrl), hasher, domain.NewPolicyEvaluator())

			got, err := uc.UpdateRole(context.Background(), tt.args.actor, tt.args.id, tt.args.role)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateRole() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.Role().String() != tt.args.role {
				t.Errorf("Role() = %v, want %v", got.Role().String(), tt.args.role)
			}
		})
	}
}

func TestUserUseCase_List(t *testing.T) {
	tests := []struct {
		name      string
		actor     *domain.Actor
		setupRepo func(ctrl *gomock.Controller) domain.UserRepository
		wantErr   error
	}{
		{
			name:  "正常系: 管理者はユーザー一覧を取得できる",
			actor: &domain.Actor{ID: 1, Role: domain.RoleAdmin, Active: true},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := mock_domain.NewMockUserRepository(ctrl)
				mock.EXPECT().List(gomock.Any(), 0, 100).Return([]*domain.User{}, nil)
				return mock
			},
			wantErr: nil,
		},
		{
			name:  "異常系: エンジニアはユーザー一覧を取得できない",
			actor: &domain.Actor{ID: 1, Role: domain.RoleEngineer, Active: true},
			setupRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				return mock_domain.NewMockUserRepository(ctrl)
			},
			wantErr: usecase.ErrAuthorizationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := mock_domain.NewMockPasswordHasher(ctrl)
			uc := usecase.NewUserUseCase(tt.setupRepo(ctrl), hasher, domain.NewPolicyEvaluator())

			_, err := uc.List(context.Background(), tt.actor, 0, 100)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
		})
	}
}
