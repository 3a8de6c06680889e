package repomanager

import (
	"context"
	"database/sql"

	"github.com/avelichko/authgate/internal/dbx"
	"github.com/avelichko/authgate/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a database
// handle and exposes the schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
