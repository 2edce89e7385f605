//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_comment_repository.go -package=domain
package domain

import "context"

type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*Comment, error)
	ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*Comment, error)
	Save(ctx context.Context, comment *Comment) (*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) error
	DeleteByDefectID(ctx context.Context, defectID int64) error
}
