package ports

import (
	"context"
	"database/sql"
)

// SessionProvider hands out scoped database connections. *sql.DB satisfies it.
// Callers must close the returned connection to return it to the pool.
type SessionProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}
