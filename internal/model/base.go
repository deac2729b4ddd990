package model

import "github.com/google/uuid"

// assignId fills a missing primary key so rows never rely on a database-side
// default, which keeps the schema portable across Postgres and SQLite.
func assignId(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
