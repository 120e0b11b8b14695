package contacts

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/common"
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

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Contact, error) {
	query := `
		SELECT id, user_id, name, phone_number, relationship_tier, notes, created_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	defer rows.Close()

	var result []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.RelationshipTier, &c.Notes, &c.CreatedAt); err != nil {
			return nil, pgerr.Wrap(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Contact, error) {
	query := `
		SELECT id, user_id, name, phone_number, relationship_tier, notes, created_at
		FROM contacts
		WHERE user_id = $1 AND id = $2
	`
	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.RelationshipTier, &c.Notes, &c.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (user_id, name, phone_number, relationship_tier, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.PhoneNumber, c.RelationshipTier, c.Notes).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	query := `
		UPDATE contacts
		SET name = $3, phone_number = $4, relationship_tier = $5, notes = $6
		WHERE user_id = $1 AND id = $2
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.ID, c.Name, c.PhoneNumber, c.RelationshipTier, c.Notes).
		Scan(&c.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM contacts
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return pgerr.Wrap(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return pgerr.Wrap(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
