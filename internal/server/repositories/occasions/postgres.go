package occasions

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

const selectColumns = `id, user_id, contact_id, occasion_type, occasion_name, date, recurring, created_at`

func scan(row interface{ Scan(...any) error }, o *models.Occasion) error {
	return row.Scan(&o.ID, &o.UserID, &o.ContactID, &o.OccasionType, &o.OccasionName, &o.Date, &o.Recurring, &o.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Occasion, error) {
	query := `SELECT ` + selectColumns + `
		FROM occasions
		WHERE user_id = $1
		ORDER BY date, occasion_name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	defer rows.Close()

	var result []models.Occasion
	for rows.Next() {
		var o models.Occasion
		if err := scan(rows, &o); err != nil {
			return nil, pgerr.Wrap(err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Occasion, error) {
	query := `SELECT ` + selectColumns + `
		FROM occasions
		WHERE user_id = $1 AND id = $2
	`
	o := &models.Occasion{}
	if err := scan(r.db.QueryRowContext(ctx, query, userID, id), o); err != nil {
		return nil, pgerr.Wrap(err)
	}
	return o, nil
}

func (r *PostgresRepository) Create(ctx context.Context, o *models.Occasion) (*models.Occasion, error) {
	query := `
		INSERT INTO occasions (user_id, contact_id, occasion_type, occasion_name, date, recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, o.UserID, o.ContactID, o.OccasionType, o.OccasionName, o.Date, o.Recurring).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return o, nil
}

func (r *PostgresRepository) Update(ctx context.Context, o *models.Occasion) (*models.Occasion, error) {
	query := `
		UPDATE occasions
		SET contact_id = $3, occasion_type = $4, occasion_name = $5, date = $6, recurring = $7
		WHERE user_id = $1 AND id = $2
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, o.UserID, o.ID, o.ContactID, o.OccasionType, o.OccasionName, o.Date, o.Recurring).
		Scan(&o.CreatedAt)
	if err != nil {
		return nil, pgerr.Wrap(err)
	}
	return o, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM occasions WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return pgerr.Wrap(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return pgerr.Wrap(err)
	} else if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
