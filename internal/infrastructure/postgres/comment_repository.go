package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

type CommentRepositoryImpl struct {
	dao *CommentDAO
}

func NewCommentRepository(pool PoolInterface) domain.CommentRepository {
	return &CommentRepositoryImpl{
		dao: NewCommentDAO(pool),
	}
}

func (r *CommentRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return commentRowToDomain(row), nil
}

func (r *CommentRepositoryImpl) ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*domain.Comment, error) {
	rows, err := r.dao.ListByDefectID(ctx, defectID, skip, limit)
	if err != nil {
		return nil, err
	}

	comments := make([]*domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, commentRowToDomain(row))
	}
	return comments, nil
}

func (r *CommentRepositoryImpl) Save(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	row := commentDomainToRow(comment)
	id, err := r.dao.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	return commentRowToDomain(row), nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	err := r.dao.Update(ctx, commentDomainToRow(comment))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *CommentRepositoryImpl) DeleteByDefectID(ctx context.Context, defectID int64) error {
	return r.dao.DeleteByDefectID(ctx, defectID)
}

func commentRowToDomain(row *CommentRow) *domain.Comment {
	return domain.ReconstructComment(row.ID, row.Content, row.CreatedAt, row.AuthorID, row.DefectID)
}

func commentDomainToRow(comment *domain.Comment) *CommentRow {
	return &CommentRow{
		ID:        comment.ID(),
		Content:   comment.Content(),
		CreatedAt: comment.CreatedAt(),
		AuthorID:  comment.AuthorID(),
		DefectID:  comment.DefectID(),
	}
}
