//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_auth_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"

	"github.com/na2na-p/defectrack/internal/domain"
)

type AuthUseCase interface {
	// Login は資格情報を検証し、ベアラートークンを発行します
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate はベアラートークンを認証済み操作者に解決します
	Authenticate(ctx context.Context, token string) (*domain.Actor, error)
}

type authUseCaseImpl struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   TokenProvider
}

func NewAuthUseCase(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens TokenProvider) AuthUseCase {
	return &authUseCaseImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (uc *authUseCaseImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !uc.hasher.Verify(password, user.HashedPassword()) {
		return "", ErrInvalidCredentials
	}

	return uc.tokens.Issue(ctx, user.Username().String())
}

func (uc *authUseCaseImpl) Authenticate(ctx context.Context, token string) (*domain.Actor, error) {
	subject, err := uc.tokens.Verify(ctx, token)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	user, err := uc.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if !user.IsActive() {
		return nil, ErrInactiveUser
	}

	return user.Actor(), nil
}
