package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Exact-match lookup: the directory stores addresses as entered and
// the pipeline must not guess at casing.
func (r *profileRepository) GetApprovedByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, email, full_name, COALESCE(organization, ''), authentication_status, email_processing_enabled, max_daily_email_processing, created_on
	          FROM profiles WHERE email = $1 AND authentication_status = 'Approved'`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&p.UserID, &p.Email, &p.FullName, &p.Organization,
		&p.AuthenticationStatus, &p.EmailProcessingEnabled, &p.MaxDailyEmailProcessing, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	return p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, email, full_name, COALESCE(organization, ''), authentication_status, email_processing_enabled, max_daily_email_processing, created_on
	          FROM profiles WHERE user_id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Email, &p.FullName, &p.Organization,
		&p.AuthenticationStatus, &p.EmailProcessingEnabled, &p.MaxDailyEmailProcessing, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	return p, nil
}

func (r *profileRepository) SetEmailProcessing(ctx context.Context, userID uuid.UUID, enabled bool, maxDaily int32) error {
	query := `UPDATE profiles SET email_processing_enabled = $1, max_daily_email_processing = $2 WHERE user_id = $3`
	res, err := r.db.ExecContext(ctx, query, enabled, maxDaily, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
