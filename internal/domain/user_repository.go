//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_user_repository.go -package=domain
package domain

import "context"

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]*User, error)
	Save(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
}
