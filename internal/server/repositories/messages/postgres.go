package messages

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

func (r *PostgresRepository) List(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	query := `
		SELECT id, user_id, contact_id, occasion_id, message_text, style, sent_at, status, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		var m models.Message
		err := rows.Scan(&m.ID, &m.UserID, &m.ContactID, &m.OccasionID, &m.MessageText, &m.Style, &m.SentAt, &m.Status, &m.CreatedAt)
		if err != nil {
			return nil, pgerr.Wrap(err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (user_id, contact_id, occasion_id, message_text, style, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, m.UserID, m.ContactID, m.OccasionID, m.MessageText, m.Style, m.SentAt, m.Status).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return m, nil
}
