package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

type ProjectRepositoryImpl struct {
	dao *ProjectDAO
}

func NewProjectRepository(pool PoolInterface) domain.ProjectRepository {
	return &ProjectRepositoryImpl{
		dao: NewProjectDAO(pool),
	}
}

func (r *ProjectRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return projectRowToDomain(row), nil
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, skip, limit int) ([]*domain.Project, error) {
	rows, err := r.dao.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, projectRowToDomain(row))
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Save(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	row := projectDomainToRow(project)
	id, err := r.dao.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	return projectRowToDomain(row), nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	err := r.dao.Update(ctx, projectDomainToRow(project))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func projectRowToDomain(row *ProjectRow) *domain.Project {
	return domain.ReconstructProject(row.ID, row.Title, row.Description, row.CreatedAt, row.OwnerID)
}

func projectDomainToRow(project *domain.Project) *ProjectRow {
	return &ProjectRow{
		ID:          project.ID(),
		Title:       project.Title(),
		Description: project.Description(),
		CreatedAt:   project.CreatedAt(),
		OwnerID:     project.OwnerID(),
	}
}
