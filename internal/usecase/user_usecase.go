//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_user_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"

	"github.com/na2na-p/defectrack/internal/domain"
)

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	// Role はセルフ登録では無視され、常に最小権限が設定されます
	Role string
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Create(ctx context.Context, actor *domain.Actor, input RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.User, error)
	GetMe(ctx context.Context, actor *domain.Actor) (*domain.User, error)
	List(ctx context.Context, actor *domain.Actor, skip, limit int) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actor *domain.Actor, id int64, role string) (*domain.User, error)
}

type userUseCaseImpl struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	policy   domain.PolicyEvaluator
}

func NewUserUseCase(userRepo domain.UserRepository, hasher domain.PasswordHasher, policy domain.PolicyEvaluator) UserUseCase {
	return &userUseCaseImpl{
		userRepo: userRepo,
		hasher:   hasher,
		policy:   policy,
	}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if !uc.policy.Decide(nil, domain.ActionUserRegister, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.createUser(ctx, input, domain.DefaultRole)
}

func (uc *userUseCaseImpl) Create(ctx context.Context, actor *domain.Actor, input RegisterUserInput) (*domain.User, error) {
	if !uc.policy.Decide(actor, domain.ActionUserCreate, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	return uc.createUser(ctx, input, role)
}

func (uc *userUseCaseImpl) createUser(ctx context.Context, input RegisterUserInput, role domain.Role) (*domain.User, error) {
	username, err := domain.NewUsername(input.Username)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByEmail(ctx, email.String()); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := uc.userRepo.FindByUsername(ctx, username.String()); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(username, email, hashed, role)
	if err != nil {
		return nil, err
	}

	return uc.userRepo.Save(ctx, user)
}

func (uc *userUseCaseImpl) Get(ctx context.Context, actor *domain.Actor, id int64) (*domain.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionUserView, domain.Target{User: user}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return user, nil
}

func (uc *userUseCaseImpl) GetMe(ctx context.Context, actor *domain.Actor) (*domain.User, error) {
	user, err := uc.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionUserViewSelf, domain.Target{User: user}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return user, nil
}

func (uc *userUseCaseImpl) List(ctx context.Context, actor *domain.Actor, skip, limit int) ([]*domain.User, error) {
	if !uc.policy.Decide(actor, domain.ActionUserList, domain.Target{}).Allowed() {
		return nil, ErrAuthorizationDenied
	}
	return uc.userRepo.List(ctx, skip, limit)
}

func (uc *userUseCaseImpl) UpdateRole(ctx context.Context, actor *domain.Actor, id int64, role string) (*domain.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.policy.Decide(actor, domain.ActionUserChangeRole, domain.Target{User: user}).Allowed() {
		return nil, ErrAuthorizationDenied
	}

	newRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if err := user.ChangeRole(newRole); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
