//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_attachment_usecase.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/defectrack/internal/domain"
)

type AttachmentUseCase interface {
	// Upload はファイル本体をストレージへ保存し、メタデータを登録します。
	// ファイル名とストレージキーはサーバー側で決定します。
	Upload(ctx context.Context, actor *domain.Actor, defectID int64, filename string, body io.Reader, contentLength int64) (*domain.Attachment, error)
	ListForDefect(ctx context.Context, actor *domain.Actor, defectID int64, skip, limit int) ([]*domain.Attachment, error)
	// Download はメタデータとファイル本体のストリームを返します。
	// 呼び出し側がストリームを必ずクローズします。
	Download(ctx context.Context, actor *domain.Actor, defectID, attachmentID int64) (*domain.Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, actor *domain.Actor, defectID, attachmentID int64) error
}

type attachmentUseCaseImpl struct {
	attachmentRepo domain.AttachmentRepository
	defectRepo     domain.DefectRepository
	storage        ObjectStorage
	storageErrors  StorageErrorChecker
	keyGenerator   StorageKeyGenerator
	policy         domain.PolicyEvaluator
}

func NewAttachmentUseCase(
	attachmentRepo domain.AttachmentRepository,
	defectRepo domain.DefectRepository,
	storage ObjectStorage,
	storageErrors StorageErrorChecker,
	keyGenerator StorageKeyGenerator,
	policy domain.PolicyEvaluator,
) AttachmentUseCase {
	return &attachmentUseCaseImpl{
		attachmentRepo: attachmentRepo,
		defectRepo:     defectRepo,
		storage:        storage,
		storageErrors:  storageErrors,
		keyGenerator:   keyGenerator,
		policy:         policy,
	}
}

func (uc *attachmentUseCaseImpl) Upload(ctx context.Context, actor *domain.Actor, defectID int64, filename string, body io.Reader, contentLength int64) (*domain.Attachment, error) {
	defect, err := uc.defectRepo.FindByID(ctx, defectID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionAttachmentUpload, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	storageKey := uc.keyGenerator.Generate(defect.ID(), filename)
	if err := uc.storage.PutObject(ctx, storageKey, body, contentLength); err != nil {
		return nil, err
	}

	attachment, err := domain.NewAttachment(ctx, filename, storageKey, actor.ID, defect.ID())
	if err != nil {
		return nil, err
	}
	return uc.attachmentRepo.Save(ctx, attachment)
}

func (uc *attachmentUseCaseImpl) ListForDefect(ctx context.Context, actor *domain.Actor, defectID int64, skip, limit int) ([]*domain.Attachment, error) {
	defect, err := uc.defectRepo.FindByID(ctx, defectID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionAttachmentList, domain.Target{Defect: defect}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.attachmentRepo.ListByDefectID(ctx, defect.ID(), skip, limit)
}

func (uc *attachmentUseCaseImpl) Download(ctx context.Context, actor *domain.Actor, defectID, attachmentID int64) (*domain.Attachment, io.ReadCloser, error) {
	attachment, err := uc.findForDefect(ctx, defectID, attachmentID)
	if err != nil {
		return nil, nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionAttachmentDownload, domain.Target{Attachment: attachment}).Allowed() {
		return nil, nil, ErrAuthorizationDenied
	}

	body, err := uc.storage.GetObject(ctx, attachment.StorageKey())
	if err != nil {
		if uc.storageErrors.IsNotFound(err) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}
	return attachment, body, nil
}

func (uc *attachmentUseCaseImpl) Delete(ctx context.Context, actor *domain.Actor, defectID, attachmentID int64) error {
	attachment, err := uc.findForDefect(ctx, defectID, attachmentID)
	if err != nil {
		return err
	}

	if !uc.policy.Decide(actor, domain.ActionAttachmentDelete, domain.Target{Attachment: attachment}).Allowed() {
		return ErrAuthorizationDenied
	}

	if err := uc.storage.DeleteObject(ctx, attachment.StorageKey()); err != nil && !uc.storageErrors.IsNotFound(err) {
		return err
	}
	return uc.attachmentRepo.Delete(ctx, attachment.ID())
}

// findForDefect はURL上の欠陥IDと添付ファイルの親が一致しない場合も
// 404として扱います。
func (uc *attachmentUseCaseImpl) findForDefect(ctx context.Context, defectID, attachmentID int64) (*domain.Attachment, error) {
	attachment, err := uc.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment.DefectID() != defectID {
		return nil, domain.ErrNotFound
	}
	return attachment, nil
}
