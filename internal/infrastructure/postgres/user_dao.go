package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// UserDAO はusersテーブルへのデータアクセスを提供する
type UserDAO struct {
	pool PoolInterface
}

// UserRow はusersテーブルの1行を表す
type UserRow struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	Role           string
	Active         bool
}

func NewUserDAO(pool PoolInterface) *UserDAO {
	return &UserDAO{
		pool: pool,
	}
}

const userColumns = `id, username, email, hashed_password, role, active`

func (dao *UserDAO) FindByID(ctx context.Context, id int64) (*UserRow, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return dao.scanOne(dao.pool.QueryRow(ctx, query, id))
}

func (dao *UserDAO) FindByUsername(ctx context.Context, username string) (*UserRow, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`
	return dao.scanOne(dao.pool.QueryRow(ctx, query, username))
}

func (dao *UserDAO) FindByEmail(ctx context.Context, email string) (*UserRow, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return dao.scanOne(dao.pool.QueryRow(ctx, query, email))
}

func (dao *UserDAO) List(ctx context.Context, skip, limit int) ([]*UserRow, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := dao.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*UserRow
	for rows.Next() {
		var result UserRow
		if err := rows.Scan(
			&result.ID,
			&result.Username,
			&result.Email,
			&result.HashedPassword,
			&result.Role,
			&result.Active,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

// Insert は採番されたIDを返す
func (dao *UserDAO) Insert(ctx context.Context, row *UserRow) (int64, error) {
	query := `
		INSERT INTO users (username, email, hashed_password, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := dao.pool.QueryRow(ctx, query,
		row.Username,
		row.Email,
		row.HashedPassword,
		row.Role,
		row.Active,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (dao *UserDAO) Update(ctx context.Context, row *UserRow) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, hashed_password = $4, role = $5, active = $6
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Username,
		row.Email,
		row.HashedPassword,
		row.Role,
		row.Active,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (dao *UserDAO) scanOne(row pgx.Row) (*UserRow, error) {
	var result UserRow
	err := row.Scan(
		&result.ID,
		&result.Username,
		&result.Email,
		&result.HashedPassword,
		&result.Role,
		&result.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}
	return &result, nil
}
