package pgerr

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, common.ErrorNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, common.ErrorAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: "23503"}, common.ErrorNotFound},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, common.ErrorNotFound},
		{"other", boom, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Wrap(tt.in), tt.want)
		})
	}

	assert.NoError(t, Wrap(nil))
	assert.EqualError(t, Wrap(boom), "db error: boom")
}
