package postgres

import (
	"database/sql"

	"repurpose-srv/internal/repurpose/repository"
	"repurpose-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.PostgresRepository = &implRepository{}

// New - Factory
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
