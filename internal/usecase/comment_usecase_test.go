package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
	mock_domain "github.com/na2na-p/defectrack/tests/domain"
	"go.uber.org/mock/gomock"
)

func TestCommentUseCase_Create(t *testing.T) {
	tests := []struct {
		name       string
		actor      *domain.Actor
		content    string
		defectRepo func(ctrl *gomock.Controller) domain.DefectRepository
		saveMocked bool
		wantErr    error
	}{
		{
			name:    "正常系: 認証済みユーザーは誰でもコメントできる",
			actor:   &domain.Actor{ID: 4, Role: domain.RoleObserver, Active: true},
			content: "再現手順を確認しました",
			defectRepo: func(ctrl *gomock.Controller) domain.DefectRepository {
				mock := mock_domain.NewMockDefectRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(7)).Return(mustReconstructDefect(t, 7, 1, nil, 10), nil)
				return mock
			},
			saveMocked: true,
			wantErr:    nil,
		},
		{
			name:    "異常系: 空のコメントは作成できない",
			actor:   &domain.Actor{ID: 4, Role: domain.RoleEngineer, Active: true},
			content: "",
			defectRepo: func(ctrl *gomock.Controller) domain.DefectRepository {
				mock := mock_domain.NewMockDefectRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(7)).Return(mustReconstructDefect(t, 7, 1, nil, 10), nil)
				return mock
			},
			wantErr: domain.ErrEmptyContent,
		},
		{
			name:    "異常系: 欠陥が存在しない場合、ErrNotFoundが返る",
			actor:   &domain.Actor{ID: 4, Role: domain.RoleEngineer, Active: true},
			content: "コメント",
			defectRepo: func(ctrl *gomock.Controller) domain.DefectRepository {
				mock := mock_domain.NewMockDefectRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, domain.ErrNotFound)
				return mock
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			commentRepo := mock_domain.NewMockCommentRepository(ctrl)
			if tt.saveMocked {
				commentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
						return comment, nil
					})
			}
			uc := usecase.NewCommentUseCase(commentRepo, tt.defectRepo(ctrl), domain.NewPolicyEvaluator())

			got, err := uc.Create(fixedTimeContext(t), tt.actor, 7, tt.content)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.AuthorID() != tt.actor.ID {
				t.Errorf("AuthorID() = %v, want %v", got.AuthorID(), tt.actor.ID)
			}
		})
	}
}

func TestCommentUseCase_Update(t *testing.T) {
	tests := []struct {
		name        string
		actor       *domain.Actor
		commentRepo func(ctrl *gomock.Controller) domain.CommentRepository
		wantErr     error
	}{
		{
			name:  "正常系: 投稿者は自分のコメントを編集できる",
			actor: &domain.Actor{ID: 4, Role: domain.RoleObserver, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(domain.ReconstructComment(30, "旧コメント", time.Now(), 4, 7), nil)
				mock.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			wantErr: nil,
		},
		{
			name:  "正常系: 管理者は他人のコメントを編集できる",
			actor: &domain.Actor{ID: 99, Role: domain.RoleAdmin, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(domain.ReconstructComment(30, "旧コメント", time.Now(), 4, 7), nil)
				mock.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			wantErr: nil,
		},
		{
			name:  "異常系: 投稿者でないエンジニアは編集できない",
			actor: &domain.Actor{ID: 5, Role: domain.RoleEngineer, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(domain.ReconstructComment(30, "旧コメント", time.Now(), 4, 7), nil)
				return mock
			},
			wantErr: usecase.ErrAuthorizationDenied,
		},
		{
			name:  "異常系: コメントが存在しない場合、ErrNotFoundが返る",
			actor: &domain.Actor{ID: 5, Role: domain.RoleAdmin, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(nil, domain.ErrNotFound)
				return mock
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewCommentUseCase(tt.commentRepo(ctrl), mock_domain.NewMockDefectRepository(ctrl), domain.NewPolicyEvaluator())

			got, err := uc.Update(context.Background(), tt.actor, 30, "修正済みコメント")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.Content() != "修正済みコメント" {
				t.Errorf("Content() = %v, want 修正済みコメント", got.Content())
			}
		})
	}
}

func TestCommentUseCase_Delete(t *testing.T) {
	tests := []struct {
		name        string
		actor       *domain.Actor
		commentRepo func(ctrl *gomock.Controller) domain.CommentRepository
		wantErr     error
	}{
		{
			name:  "正常系: 投稿者は自分のコメントを削除できる",
			actor: &domain.Actor{ID: 4, Role: domain.RoleObserver, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(domain.ReconstructComment(30, "c", time.Now(), 4, 7), nil)
				mock.EXPECT().Delete(gomock.Any(), int64(30)).Return(nil)
				return mock
			},
			wantErr: nil,
		},
		{
			name:  "異常系: 投稿者でないオブザーバーは削除できない",
			actor: &domain.Actor{ID: 8, Role: domain.RoleObserver, Active: true},
			commentRepo: func(ctrl *gomock.Controller) domain.CommentRepository {
				mock := mock_domain.NewMockCommentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(30)).Return(domain.ReconstructComment(30, "c", time.Now(), 4, 7), nil)
				return mock
			},
			wantErr: usecase.ErrAuthorizationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewCommentUseCase(tt.commentRepo(ctrl), mock_domain.NewMockDefectRepository(ctrl), domain.NewPolicyEvaluator())

			err := uc.Delete(context.Background(), tt.actor, 30)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
		})
	}
}
