// Package users stores store accounts in PostgreSQL.
package users

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/dbx"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/pgerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, password_hash, salt, confirmed, confirmation_token)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Salt, user.Confirmed, user.ConfirmationToken).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, salt, confirmed, created_at FROM users
		 WHERE email = $1
		 `
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, salt, confirmed, created_at FROM users
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Salt, &user.Confirmed, &user.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return user, nil
}

func (r *PostgresRepository) Confirm(ctx context.Context, token string) (string, error) {
	query :=
		`UPDATE users SET confirmed = TRUE, confirmation_token = NULL
		 WHERE confirmation_token = $1
		 RETURNING id
		 `

	var id string
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&id); err != nil {
		return "", pgerr.Wrap(err)
	}
	return id, nil
}
