package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// ProjectDAO はprojectsテーブルへのデータアクセスを提供する
type ProjectDAO struct {
	pool PoolInterface
}

// ProjectRow はprojectsテーブルの1行を表す
type ProjectRow struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	OwnerID     int64
}

func NewProjectDAO(pool PoolInterface) *ProjectDAO {
	return &ProjectDAO{
		pool: pool,
	}
}

func (dao *ProjectDAO) FindByID(ctx context.Context, id int64) (*ProjectRow, error) {
	query := `
		SELECT id, title, description, created_at, owner_id
		FROM projects
		WHERE id = $1
	`

	var result ProjectRow
	err := dao.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.Description,
		&result.CreatedAt,
		&result.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}
	return &result, nil
}

func (dao *ProjectDAO) List(ctx context.Context, skip, limit int) ([]*ProjectRow, error) {
	query := `
		SELECT id, title, description, created_at, owner_id
		FROM projects
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := dao.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*ProjectRow
	for rows.Next() {
		var result ProjectRow
		if err := rows.Scan(
			&result.ID,
			&result.Title,
			&result.Description,
			&result.CreatedAt,
			&result.OwnerID,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *ProjectDAO) Insert(ctx context.Context, row *ProjectRow) (int64, error) {
	query := `
		INSERT INTO projects (title, description, created_at, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := dao.pool.QueryRow(ctx, query,
		row.Title,
		row.Description,
		row.CreatedAt,
		row.OwnerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (dao *ProjectDAO) Update(ctx context.Context, row *ProjectRow) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query, row.ID, row.Title, row.Description)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (dao *ProjectDAO) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM projects
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
