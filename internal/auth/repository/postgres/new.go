package postgres

import (
	"database/sql"

	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory
func New(db *sql.DB, l log.Logger) repository.UserRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
