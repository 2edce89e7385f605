//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_project_usecase.go -package=usecase
package usecase

import (
	"context"

	"github.com/na2na-p/defectrack/internal/domain"
)

type ProjectUseCase interface {
	CreateForUser(ctx context.Context, actor *domain.Actor, userID int64, title, description string) (*domain.Project, error)
	Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Project, error)
	List(ctx context.Context, actor *domain.Actor, skip, limit int) ([]*domain.Project, error)
	Update(ctx context.Context, actor *domain.Actor, id int64, title, description *string) (*domain.Project, error)
	Delete(ctx context.Context, actor *domain.Actor, id int64) error
}

type projectUseCaseImpl struct {
	projectRepo domain.ProjectRepository
	defectRepo  domain.DefectRepository
	userRepo    domain.UserRepository
	policy      domain.PolicyEvaluator
}

func NewProjectUseCase(projectRepo domain.ProjectRepository, defectRepo domain.DefectRepository, userRepo domain.UserRepository, policy domain.PolicyEvaluator) ProjectUseCase {
	return &projectUseCaseImpl{
		projectRepo: projectRepo,
		defectRepo:  defectRepo,
		userRepo:    userRepo,
		policy:      policy,
	}
}

func (uc *projectUseCaseImpl) CreateForUser(ctx context.Context, actor *domain.Actor, userID int64, title, description string) (*domain.Project, error) {
	owner, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionProjectCreate, domain.Target{User: owner}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	project, err := domain.NewProject(ctx, title, description, owner.ID())
	if err != nil {
		return nil, err
	}
	return uc.projectRepo.Save(ctx, project)
}

func (uc *projectUseCaseImpl) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.Project, error) {
	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionProjectView, domain.Target{Project: project}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return project, nil
}

func (uc *projectUseCaseImpl) List(ctx context.Context, actor *domain.Actor, skip, limit int) ([]*domain.Project, error) {
	if !uc.policy.Decide(actor, domain.ActionProjectList, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.projectRepo.List(ctx, skip, limit)
}

func (uc *projectUseCaseImpl) Update(ctx context.Context, actor *domain.Actor, id int64, title, description *string) (*domain.Project, error) {
	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionProjectUpdate, domain.Target{Project: project}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	if err := project.ApplyUpdate(title, description); err != nil {
		return nil, err
	}
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete は欠陥が1件でも残っているプロジェクトの削除を拒否します
func (uc *projectUseCaseImpl) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !uc.policy.Decide(actor, domain.ActionProjectDelete, domain.Target{Project: project}).Allowed() {
		return ErrAuthorizationDenied
	}

	count, err := uc.defectRepo.CountByProjectID(ctx, project.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProjectHasDefects
	}

	return uc.projectRepo.Delete(ctx, project.ID())
}
