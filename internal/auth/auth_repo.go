package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	const query = `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, email, password, created_at, updated_at
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, params.Name, params.Email, params.Password).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Password,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	return out, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Password,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	return out, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	const query = `
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var out User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Password,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	return out, err
}
