package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

type DefectRepositoryImpl struct {
	dao *DefectDAO
}

func NewDefectRepository(pool PoolInterface) domain.DefectRepository {
	return &DefectRepositoryImpl{
		dao: NewDefectDAO(pool),
	}
}

func (r *DefectRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Defect, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return defectRowToDomain(row)
}

func (r *DefectRepositoryImpl) List(ctx context.Context, filter domain.DefectFilter, skip, limit int) ([]*domain.Defect, error) {
	rows, err := r.dao.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, err
	}

	defects := make([]*domain.Defect, 0, len(rows))
	for _, row := range rows {
		defect, err := defectRowToDomain(row)
		if err != nil {
			return nil, err
		}
		defects = append(defects, defect)
	}
	return defects, nil
}

func (r *DefectRepositoryImpl) CountByProjectID(ctx context.Context, projectID int64) (int64, error) {
	return r.dao.CountByProjectID(ctx, projectID)
}

func (r *DefectRepositoryImpl) Save(ctx context.Context, defect *domain.Defect) (*domain.Defect, error) {
	row := defectDomainToRow(defect)
	id, err := r.dao.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	return defectRowToDomain(row)
}

func (r *DefectRepositoryImpl) Update(ctx context.Context, defect *domain.Defect) error {
	err := r.dao.Update(ctx, defectDomainToRow(defect))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *DefectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func defectRowToDomain(row *DefectRow) (*domain.Defect, error) {
	return domain.ReconstructDefect(
		row.ID,
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
	)
}

func defectDomainToRow(defect *domain.Defect) *DefectRow {
	return &DefectRow{
		ID:          defect.ID(),
		Title:       defect.Title(),
		Description: defect.Description(),
		Priority:    defect.Priority().String(),
		Status:      defect.Status().String(),
		CreatedAt:   defect.CreatedAt(),
		UpdatedAt:   defect.UpdatedAt(),
		DueDate:     defect.DueDate(),
		ReporterID:  defect.ReporterID(),
		AssigneeID:  defect.AssigneeID(),
		ProjectID:   defect.ProjectID(),
	}
}
