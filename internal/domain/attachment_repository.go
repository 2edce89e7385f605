//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_attachment_repository.go -package=domain
package domain

import "context"

type AttachmentRepository interface {
	FindByID(ctx context.Context, id int64) (*Attachment, error)
	ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*Attachment, error)
	Save(ctx context.Context, attachment *Attachment) (*Attachment, error)
	Delete(ctx context.Context, id int64) error
}
