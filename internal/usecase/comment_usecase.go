//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_comment_usecase.go -package=usecase
package usecase

import (
	"context"

	"github.com/na2na-p/defectrack/internal/domain"
)

type CommentUseCase interface {
	Create(ctx context.Context, actor *domain.Actor, defectID int64, content string) (*domain.Comment, error)
	ListForDefect(ctx context.Context, actor *domain.Actor, defectID int64, skip, limit int) ([]*domain.Comment, error)
	Update(ctx context.Context, actor *domain.Actor, id int64, content string) (*domain.Comment, error)
	Delete(ctx context.Context, actor *domain.Actor, id int64) error
}

type commentUseCaseImpl struct {
	commentRepo domain.CommentRepository
	defectRepo  domain.DefectRepository
	policy      domain.PolicyEvaluator
}

func NewCommentUseCase(commentRepo domain.CommentRepository, defectRepo domain.DefectRepository, policy domain.PolicyEvaluator) CommentUseCase {
	return &commentUseCaseImpl{
		commentRepo: commentRepo,
		defectRepo:  defectRepo,
		policy:      policy,
	}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, actor *domain.Actor, defectID int64, content string) (*domain.Comment, error) {
	defect, err := uc.defectRepo.FindByID(ctx, defectID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionCommentCreate, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	comment, err := domain.NewComment(ctx, content, actor.ID, defect.ID())
	if err != nil {
		return nil, err
	}
	return uc.commentRepo.Save(ctx, comment)
}

func (uc *commentUseCaseImpl) ListForDefect(ctx context.Context, actor *domain.Actor, defectID int64, skip, limit int) ([]*domain.Comment, error) {
	defect, err := uc.defectRepo.FindByID(ctx, defectID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionCommentList, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.commentRepo.ListByDefectID(ctx, defect.ID(), skip, limit)
}

func (uc *commentUseCaseImpl) Update(ctx context.Context, actor *domain.Actor, id int64, content string) (*domain.Comment, error) {
	comment, err := uc.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionCommentUpdate, domain.Target{Comment: comment}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	if err := comment.SetContent(content); err != nil {
		return nil, err
	}
	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCaseImpl) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	comment, err := uc.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !uc.policy.Decide(actor, domain.ActionCommentDelete, domain.Target{Comment: comment}).Allowed() {
		return ErrAuthorizationDenied
	}
	return uc.commentRepo.Delete(ctx, comment.ID())
}
