package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewDB opens and pings a database connection for the given driver and
// connection string.
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, openErr := sql.Open(dbtype, connstr)
	if openErr != nil {
		return &sql.DB{}, fmt.Errorf("error opening connection -> %v", openErr)
	}

	if pingErr := db.Ping(); pingErr != nil {
		return &sql.DB{}, fmt.Errorf("could not establish connection with database -> %v", pingErr)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string.
func BuildDBConnStr(password, user, host, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", user, password, host, dbname, sslmode)
}
