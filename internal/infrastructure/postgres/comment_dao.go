package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// CommentDAO はcommentsテーブルへのデータアクセスを提供する
type CommentDAO struct {
	pool PoolInterface
}

// CommentRow はcommentsテーブルの1行を表す
type CommentRow struct {
	ID        int64
	Content   string
	CreatedAt time.Time
	AuthorID  int64
	DefectID  int64
}

func NewCommentDAO(pool PoolInterface) *CommentDAO {
	return &CommentDAO{
		pool: pool,
	}
}

func (dao *CommentDAO) FindByID(ctx context.Context, id int64) (*CommentRow, error) {
	query := `
		SELECT id, content, created_at, author_id, defect_id
		FROM comments
		WHERE id = $1
	`

	var result CommentRow
	err := dao.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Content,
		&result.CreatedAt,
		&result.AuthorID,
		&result.DefectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}
	return &result, nil
}

func (dao *CommentDAO) ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*CommentRow, error) {
	query := `
		SELECT id, content, created_at, author_id, defect_id
		FROM comments
		WHERE defect_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	rows, err := dao.pool.Query(ctx, query, defectID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*CommentRow
	for rows.Next() {
		var result CommentRow
		if err := rows.Scan(
			&result.ID,
			&result.Content,
			&result.CreatedAt,
			&result.AuthorID,
			&result.DefectID,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *CommentDAO) Insert(ctx context.Context, row *CommentRow) (int64, error) {
	query := `
		INSERT INTO comments (content, created_at, author_id, defect_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := dao.pool.QueryRow(ctx, query,
		row.Content,
		row.CreatedAt,
		row.AuthorID,
		row.DefectID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (dao *CommentDAO) Update(ctx context.Context, row *CommentRow) error {
	query := `
		UPDATE comments
		SET content = $2
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query, row.ID, row.Content)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (dao *CommentDAO) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM comments
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByDefectID は対象が0件でもエラーにしない
func (dao *CommentDAO) DeleteByDefectID(ctx context.Context, defectID int64) error {
	query := `
		DELETE FROM comments
		WHERE defect_id = $1
	`

	_, err := dao.pool.Exec(ctx, query, defectID)
	return err
}
