package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email string, passwordHash, passwordSalt []byte, name string, role domain.Role) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, password_hash, password_salt, name, user_type)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, email, name, user_type, password_hash, password_salt, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, passwordHash, passwordSalt, name, role)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, name, user_type, password_hash, password_salt, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, name, user_type, password_hash, password_salt, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}
