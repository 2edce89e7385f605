//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_project_repository.go -package=domain
package domain

import "context"

type ProjectRepository interface {
	FindByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context, skip, limit int) ([]*Project, error)
	Save(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}
