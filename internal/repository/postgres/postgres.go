package postgres

import (
	"database/sql"

	"sric-access-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.GuestRepository
	repository.ProcessedEmailRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		ProfileRepository:        NewProfileRepository(db),
		GuestRepository:          NewGuestRepository(db),
		ProcessedEmailRepository: NewProcessedEmailRepository(db),
	}
}
