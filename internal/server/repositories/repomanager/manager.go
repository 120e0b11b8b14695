package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/touchbase/internal/dbx"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/messages"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/occasions"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can
// run several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Occasions(db dbx.DBTX) occasions.Repository
	Messages(db dbx.DBTX) messages.Repository
}
