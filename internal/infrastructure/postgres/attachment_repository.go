package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

type AttachmentRepositoryImpl struct {
	dao *AttachmentDAO
}

func NewAttachmentRepository(pool PoolInterface) domain.AttachmentRepository {
	return &AttachmentRepositoryImpl{
		dao: NewAttachmentDAO(pool),
	}
}

func (r *AttachmentRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Attachment, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return attachmentRowToDomain(row), nil
}

func (r *AttachmentRepositoryImpl) ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*domain.Attachment, error) {
	rows, err := r.dao.ListByDefectID(ctx, defectID, skip, limit)
	if err != nil {
		return nil, err
	}

	attachments := make([]*domain.Attachment, 0, len(rows))
	for _, row := range rows {
		attachments = append(attachments, attachmentRowToDomain(row))
	}
	return attachments, nil
}

func (r *AttachmentRepositoryImpl) Save(ctx context.Context, attachment *domain.Attachment) (*domain.Attachment, error) {
	row := attachmentDomainToRow(attachment)
	id, err := r.dao.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	return attachmentRowToDomain(row), nil
}

func (r *AttachmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func attachmentRowToDomain(row *AttachmentRow) *domain.Attachment {
	return domain.ReconstructAttachment(row.ID, row.Filename, row.StorageKey, row.UploadedAt, row.UploaderID, row.DefectID)
}

func attachmentDomainToRow(attachment *domain.Attachment) *AttachmentRow {
	return &AttachmentRow{
		ID:         attachment.ID(),
		Filename:   attachment.Filename(),
		StorageKey: attachment.StorageKey(),
		UploadedAt: attachment.UploadedAt(),
		UploaderID: attachment.UploaderID(),
		DefectID:   attachment.DefectID(),
	}
}
