//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_defect_repository.go -package=domain
package domain

import "context"

type DefectRepository interface {
	FindByID(ctx context.Context, id int64) (*Defect, error)
	// List は filter の条件をすべて満たす欠陥を主キー昇順で返します
	List(ctx context.Context, filter DefectFilter, skip, limit int) ([]*Defect, error)
	CountByProjectID(ctx context.Context, projectID int64) (int64, error)
	Save(ctx context.Context, defect *Defect) (*Defect, error)
	Update(ctx context.Context, defect *Defect) error
	Delete(ctx context.Context, id int64) error
}
