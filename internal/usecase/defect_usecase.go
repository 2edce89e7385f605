//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_defect_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

type CreateDefectInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	Status      domain.Status
	DueDate     *time.Time
	AssigneeID  *int64
	ProjectID   int64
}

type DefectUseCase interface {
	// CreateForProject はURLで指定されたプロジェクト配下に欠陥を作成します
	CreateForProject(ctx context.Context, actor *domain.Actor, projectID int64, input CreateDefectInput) (*domain.Defect, error)
	// Create はプロジェクト文脈なしの作成で、対象プロジェクトは入力で指定します
	Create(ctx context.Context, actor *domain.Actor, input CreateDefectInput) (*domain.Defect, error)
	Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Defect, error)
	List(ctx context.Context, actor *domain.Actor, filter domain.DefectFilter, skip, limit int) ([]*domain.Defect, error)
	Update(ctx context.Context, actor *domain.Actor, id int64, update domain.DefectUpdate) (*domain.Defect, error)
	Delete(ctx context.Context, actor *domain.Actor, id int64) error
}

type defectUseCaseImpl struct {
	defectRepo     domain.DefectRepository
	projectRepo    domain.ProjectRepository
	commentRepo    domain.CommentRepository
	attachmentRepo domain.AttachmentRepository
	storage        ObjectStorage
	storageErrors  StorageErrorChecker
	policy         domain.PolicyEvaluator
}

func NewDefectUseCase(
	defectRepo domain.DefectRepository,
	projectRepo domain.ProjectRepository,
	commentRepo domain.CommentRepository,
	attachmentRepo domain.AttachmentRepository,
	storage ObjectStorage,
	storageErrors StorageErrorChecker,
	policy domain.PolicyEvaluator,
) DefectUseCase {
	return &defectUseCaseImpl{
		defectRepo:     defectRepo,
		projectRepo:    projectRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		storageErrors:  storageErrors,
		policy:         policy,
	}
}

func (uc *defectUseCaseImpl) CreateForProject(ctx context.Context, actor *domain.Actor, projectID int64, input CreateDefectInput) (*domain.Defect, error) {
	project, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionDefectCreateInProject, domain.Target{Project: project}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	input.ProjectID = project.ID()
	return uc.save(ctx, actor, input)
}

func (uc *defectUseCaseImpl) Create(ctx context.Context, actor *domain.Actor, input CreateDefectInput) (*domain.Defect, error) {
	if !uc.policy.Decide(actor, domain.ActionDefectCreate, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	return uc.save(ctx, actor, input)
}

// save は報告者を常に認証済み操作者から設定します。
// クライアントが送ってきた報告者IDは一切参照しません。
func (uc *defectUseCaseImpl) save(ctx context.Context, actor *domain.Actor, input CreateDefectInput) (*domain.Defect, error) {
	defect, err := domain.NewDefect(ctx, input.Title, input.Description, input.Priority, input.Status, input.DueDate, actor.ID, input.AssigneeID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	return uc.defectRepo.Save(ctx, defect)
}

func (uc *defectUseCaseImpl) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Defect, error) {
	defect, err := uc.defectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionDefectView, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return defect, nil
}

func (uc *defectUseCaseImpl) List(ctx context.Context, actor *domain.Actor, filter domain.DefectFilter, skip, limit int) ([]*domain.Defect, error) {
	if !uc.policy.Decide(actor, domain.ActionDefectList, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.defectRepo.List(ctx, filter, skip, limit)
}

func (uc *defectUseCaseImpl) Update(ctx context.Context, actor *domain.Actor, id int64, update domain.DefectUpdate) (*domain.Defect, error) {
	defect, err := uc.defectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionDefectUpdate, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	if err := defect.ApplyUpdate(ctx, update); err != nil {
		return nil, err
	}
	if err := uc.defectRepo.Update(ctx, defect); err != nil {
		return nil, err
	}
	return defect, nil
}

// Delete は欠陥に紐づくコメントと添付ファイル（メタデータおよび
// ストレージ上の実体）を合わせて削除します。
func (uc *defectUseCaseImpl) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	defect, err := uc.defectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !uc.policy.Decide(actor, domain.ActionDefectDelete, domain.Target{Defect: defect}).Allowed() {
		return ErrAuthorizationDenied
	}

	// 添付ファイルは削除しながらページングするため、常にskip=0で
	// 先頭ページを取り直し、空になるまで繰り返します
	for {
		attachments, err := uc.attachmentRepo.ListByDefectID(ctx, defect.ID(), 0, cascadePageSize)
		if err != nil {
			return err
		}
		if len(attachments) == 0 {
			break
		}
		for _, attachment := range attachments {
			if err := uc.storage.DeleteObject(ctx, attachment.StorageKey()); err != nil && !uc.storageErrors.IsNotFound(err) {
				return err
			}
			if err := uc.attachmentRepo.Delete(ctx, attachment.ID()); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}
		if len(attachments) < cascadePageSize {
			break
		}
	}

	if err := uc.commentRepo.DeleteByDefectID(ctx, defect.ID()); err != nil {
		return err
	}

	return uc.defectRepo.Delete(ctx, defect.ID())
}

const cascadePageSize = 500
