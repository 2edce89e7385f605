package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// AttachmentDAO はattachmentsテーブルへのデータアクセスを提供する
type AttachmentDAO struct {
	pool PoolInterface
}

// AttachmentRow はattachmentsテーブルの1行を表す
type AttachmentRow struct {
	ID         int64
	Filename   string
	StorageKey string
	UploadedAt time.Time
	UploaderID int64
	DefectID   int64
}

func NewAttachmentDAO(pool PoolInterface) *AttachmentDAO {
	return &AttachmentDAO{
		pool: pool,
	}
}

func (dao *AttachmentDAO) FindByID(ctx context.Context, id int64) (*AttachmentRow, error) {
	query := `
		SELECT id, filename, storage_key, uploaded_at, uploader_id, defect_id
		FROM attachments
		WHERE id = $1
	`

	var result AttachmentRow
	err := dao.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Filename,
		&result.StorageKey,
		&result.UploadedAt,
		&result.UploaderID,
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

func (dao *AttachmentDAO) ListByDefectID(ctx context.Context, defectID int64, skip, limit int) ([]*AttachmentRow, error) {
	query := `
		SELECT id, filename, storage_key, uploaded_at, uploader_id, defect_id
		FROM attachments
		WHERE defect_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	rows, err := dao.pool.Query(ctx, query, defectID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*AttachmentRow
	for rows.Next() {
		var result AttachmentRow
		if err := rows.Scan(
			&result.ID,
			&result.Filename,
			&result.StorageKey,
			&result.UploadedAt,
			&result.UploaderID,
			&result.DefectID,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (dao *AttachmentDAO) Insert(ctx context.Context, row *AttachmentRow) (int64, error) {
	query := `
		INSERT INTO attachments (filename, storage_key, uploaded_at, uploader_id, defect_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := dao.pool.QueryRow(ctx, query,
		row.Filename,
		row.StorageKey,
		row.UploadedAt,
		row.UploaderID,
		row.DefectID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (dao *AttachmentDAO) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM attachments
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
