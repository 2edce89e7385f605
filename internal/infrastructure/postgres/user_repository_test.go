package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/infrastructure/postgres"
	"github.com/pashagolub/pgxmock/v4"
)

func TestUserRepositoryImpl_FindByUsername(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:     "正常系: ユーザーの取得に成功",
			username: "alice",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "username", "email", "hashed_password", "role", "active"}).
					AddRow(int64(1), "alice", "alice@example.com", "$2a$10$hash", "engineer", true)
				mock.ExpectQuery(`SELECT id, username, email, hashed_password, role, active`).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantErr: nil,
		},
		{
			name:     "異常系: 存在しないユーザー名はErrNotFoundになる",
			username: "nobody",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, username, email, hashed_password, role, active`).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("モックプールの作成に失敗しました: %v", err)
			}
			defer mock.Close()

			tt.mockSetup(mock)

			repo := postgres.NewUserRepository(mock)
			got, err := repo.FindByUsername(context.Background(), tt.username)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindByUsername() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("want no error, but got %v", err)
				}
				if got.Username().String() != tt.username {
					t.Errorf("Username() = %v, want %v", got.Username().String(), tt.username)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
			}
		})
	}
}

func TestUserRepositoryImpl_Save(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "正常系: 採番されたIDを持つユーザーが返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "$2a$10$hash", "observer", true).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
			},
			wantErr: nil,
		},
		{
			name: "異常系: ユーザー名の重複はErrDuplicateUsernameになる",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "$2a$10$hash", "observer", true).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
			wantErr: domain.ErrDuplicateUsername,
		},
		{
			name: "異常系: メールアドレスの重複はErrDuplicateEmailになる",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "$2a$10$hash", "observer", true).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("モックプールの作成に失敗しました: %v", err)
			}
			defer mock.Close()

			tt.mockSetup(mock)

			username, err := domain.NewUsername("alice")
			if err != nil {
				t.Fatalf("Usernameの作成に失敗しました: %v", err)
			}
			email, err := domain.NewEmail("alice@example.com")
			if err != nil {
				t.Fatalf("Emailの作成に失敗しました: %v", err)
			}
			user, err := domain.NewUser(username, email, "$2a$10$hash", domain.RoleObserver)
			if err != nil {
				t.Fatalf("Userの作成に失敗しました: %v", err)
			}

			repo := postgres.NewUserRepository(mock)
			got, err := repo.Save(context.Background(), user)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Save() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("want no error, but got %v", err)
				}
				if got.ID() != 42 {
					t.Errorf("ID() = %v, want 42", got.ID())
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
			}
		})
	}
}
