package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/defectrack/internal/domain"
)

type UserRepositoryImpl struct {
	dao *UserDAO
}

func NewUserRepository(pool PoolInterface) domain.UserRepository {
	return &UserRepositoryImpl{
		dao: NewUserDAO(pool),
	}
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapUserError(err)
	}
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserError(err)
	}
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	rows, err := r.dao.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := userRowToDomain(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := userDomainToRow(user)
	id, err := r.dao.Insert(ctx, row)
	if err != nil {
		return nil, mapUserError(err)
	}
	row.ID = id
	return userRowToDomain(row)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	if err := r.dao.Update(ctx, userDomainToRow(user)); err != nil {
		return mapUserError(err)
	}
	return nil
}

// mapUserError はドライバのエラーをドメインのエラーへ読み替える
func mapUserError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err, "users_username_key"):
		return domain.ErrDuplicateUsername
	case isUniqueViolation(err, "users_email_key"):
		return domain.ErrDuplicateEmail
	default:
		return err
	}
}

func userRowToDomain(row *UserRow) (*domain.User, error) {
	return domain.ReconstructUser(row.ID, row.Username, row.Email, row.HashedPassword, row.Role, row.Active)
}

func userDomainToRow(user *domain.User) *UserRow {
	return &UserRow{
		ID:             user.ID(),
		Username:       user.Username().String(),
		Email:          user.Email().String(),
		HashedPassword: user.HashedPassword(),
		Role:           user.Role().String(),
		Active:         user.IsActive(),
	}
}
