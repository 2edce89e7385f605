package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

// DefectDAO はdefectsテーブルへのデータアクセスを提供する
type DefectDAO struct {
	pool PoolInterface
}

// DefectRow はdefectsテーブルの1行を表す
type DefectRow struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DueDate     *time.Time
	ReporterID  int64
	AssigneeID  *int64
	ProjectID   int64
}

func NewDefectDAO(pool PoolInterface) *DefectDAO {
	return &DefectDAO{
		pool: pool,
	}
}

const defectColumns = `id, title, description, priority, status, created_at, updated_at, due_date, reporter_id, assignee_id, project_id`

func (dao *DefectDAO) FindByID(ctx context.Context, id int64) (*DefectRow, error) {
	query := `
		SELECT ` + defectColumns + `
		FROM defects
		WHERE id = $1
	`

	var result DefectRow
	err := dao.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.Description,
		&result.Priority,
		&result.Status,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.DueDate,
		&result.ReporterID,
		&result.AssigneeID,
		&result.ProjectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}
	return &result, nil
}

// List は filter の条件を AND で結合した WHERE 句を動的に組み立てる。
// 値はすべてプレースホルダ経由で渡し、SQLには連結しない。
func (dao *DefectDAO) List(ctx context.Context, filter domain.DefectFilter, skip, limit int) ([]*DefectRow, error) {
	conditions, args := buildDefectConditions(filter)

	query := `SELECT ` + defectColumns + ` FROM defects`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	rows, err := dao.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*DefectRow
	for rows.Next() {
		var result DefectRow
		if err := rows.Scan(
			&result.ID,
			&result.Title,
			&result.Description,
			&result.Priority,
			&result.Status,
			&result.CreatedAt,
			&result.UpdatedAt,
			&result.DueDate,
			&result.ReporterID,
			&result.AssigneeID,
			&result.ProjectID,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func buildDefectConditions(filter domain.DefectFilter) ([]string, []any) {
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.ProjectID != nil {
		add("project_id = $%d", *filter.ProjectID)
	}
	if filter.Status != nil {
		add("status = $%d", filter.Status.String())
	}
	if filter.Priority != nil {
		add("priority = $%d", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		add("assignee_id = $%d", *filter.AssigneeID)
	}
	if filter.ReporterID != nil {
		add("reporter_id = $%d", *filter.ReporterID)
	}
	if filter.CreatedStartDate != nil {
		add("created_at >= $%d", *filter.CreatedStartDate)
	}
	if filter.CreatedEndDate != nil {
		add("created_at <= $%d", *filter.CreatedEndDate)
	}
	if filter.DueStartDate != nil {
		add("due_date >= $%d", *filter.DueStartDate)
	}
	if filter.DueEndDate != nil {
		add("due_date <= $%d", *filter.DueEndDate)
	}
	if filter.SearchQuery != nil {
		args = append(args, "%"+*filter.SearchQuery+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	return conditions, args
}

func (dao *DefectDAO) CountByProjectID(ctx context.Context, projectID int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM defects WHERE project_id = $1
	`

	var count int64
	if err := dao.pool.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (dao *DefectDAO) Insert(ctx context.Context, row *DefectRow) (int64, error) {
	query := `
		INSERT INTO defects (title, description, priority, status, created_at, updated_at, due_date, reporter_id, assignee_id, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := dao.pool.QueryRow(ctx, query,
		row.Title,
		row.Description,
		row.Priority,
		row.Status,
		row.CreatedAt,
		row.UpdatedAt,
		row.DueDate,
		row.ReporterID,
		row.AssigneeID,
		row.ProjectID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (dao *DefectDAO) Update(ctx context.Context, row *DefectRow) error {
	query := `
		UPDATE defects
		SET title = $2, description = $3, priority = $4, status = $5, updated_at = $6, due_date = $7, assignee_id = $8
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Title,
		row.Description,
		row.Priority,
		row.Status,
		row.UpdatedAt,
		row.DueDate,
		row.AssigneeID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (dao *DefectDAO) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM defects
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
