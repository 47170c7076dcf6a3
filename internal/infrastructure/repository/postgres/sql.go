// Package postgres persists the cap ledger in PostgreSQL. Repositories share
// the memory package's semantics so the two stores are interchangeable behind
// the domain interfaces.
package postgres

import "database/sql"

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}
