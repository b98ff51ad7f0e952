package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the settings database. Implementations open it
// on first use so commands that never touch settings skip the cost.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
