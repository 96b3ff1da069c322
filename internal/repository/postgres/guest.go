package postgres

import (
	"context"
	"database/sql"
	"time"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `INSERT INTO guests (name, visit_date, estimated_arrival, arrival_status, floor_access, inviter_id, organization, requester_email, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().Format("2006-01-02")
	g.CreatedOn = now
	logger.DatabaseCall("INSERT", "guests", "name", g.Name, "visit_date", g.VisitDate)
	err := r.db.QueryRowContext(ctx, query,
		g.Name, g.VisitDate, g.EstimatedArrival, g.ArrivalStatus,
		g.FloorAccess, g.InviterID, g.Organization, g.RequesterEmail, g.CreatedOn,
	).Scan(&g.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "name", g.Name)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "id", g.ID)
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	g := &domain.Guest{}
	query := `SELECT id, name, visit_date, estimated_arrival, arrival_status, COALESCE(floor_access, ''), inviter_id, COALESCE(organization, ''), COALESCE(requester_email, ''), created_on
	          FROM guests WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.VisitDate, &g.EstimatedArrival, &g.ArrivalStatus,
		&g.FloorAccess, &g.InviterID, &g.Organization, &g.RequesterEmail, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	g.CreatedOn = createdOn.Format("2006-01-02")
	return g, nil
}
