package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type processedEmailRepository struct {
	db *sql.DB
}

func NewProcessedEmailRepository(db *sql.DB) repository.ProcessedEmailRepository {
	return &processedEmailRepository{db: db}
}

func (r *processedEmailRepository) Create(ctx context.Context, rec *domain.ProcessedEmail) error {
	extracted, err := json.Marshal(rec.ExtractedData)
	if err != nil {
		return fmt.Errorf("failed to encode extracted data: %w", err)
	}

	query := `INSERT INTO email_processed_guests
	          (user_id, sender_email, email_subject, original_email_content, extracted_data, confidence_score, processing_errors, ai_model_used, processing_status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	rec.CreatedAt = time.Now()
	logger.DatabaseCall("INSERT", "email_processed_guests", "user_id", rec.UserID)
	err = r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.SenderEmail, rec.EmailSubject, rec.OriginalEmailContent,
		extracted, rec.ConfidenceScore, pq.Array(rec.ProcessingErrors),
		rec.AIModelUsed, rec.ProcessingStatus, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "user_id", rec.UserID)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "id", rec.ID)
	return nil
}

func (r *processedEmailRepository) GetByID(ctx context.Context, id int64) (*domain.ProcessedEmail, error) {
	query := `SELECT id, user_id, sender_email, email_subject, original_email_content, extracted_data, confidence_score, processing_errors, ai_model_used, processing_status, guest_id, COALESCE(rejected_reason, ''), created_at, processed_at
	          FROM email_processed_guests WHERE id = $1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *processedEmailRepository) MarkApproved(ctx context.Context, id, guestID int64, processedAt time.Time) error {
	query := `UPDATE email_processed_guests SET processing_status = 'approved', guest_id = $1, processed_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, guestID, processedAt, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *processedEmailRepository) MarkRejected(ctx context.Context, id int64, reason string) error {
	query := `UPDATE email_processed_guests SET processing_status = 'rejected', rejected_reason = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, reason, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *processedEmailRepository) CountForUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int32, error) {
	query := `SELECT COUNT(*) FROM email_processed_guests WHERE user_id = $1 AND created_at >= $2`
	var count int32
	err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *processedEmailRepository) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProcessedEmail, error) {
	query := `SELECT id, user_id, sender_email, email_subject, original_email_content, extracted_data, confidence_score, processing_errors, ai_model_used, processing_status, guest_id, COALESCE(rejected_reason, ''), created_at, processed_at
	          FROM email_processed_guests WHERE user_id = $1 AND processing_status = 'pending' ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ProcessedEmail
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *processedEmailRepository) StatsForUser(ctx context.Context, userID uuid.UUID) (*domain.ProcessingStats, error) {
	query := `SELECT COUNT(*),
	                 COUNT(*) FILTER (WHERE processing_status = 'pending'),
	                 COUNT(*) FILTER (WHERE processing_status = 'approved'),
	                 COUNT(*) FILTER (WHERE processing_status = 'rejected'),
	                 COUNT(*) FILTER (WHERE array_length(processing_errors, 1) > 0),
	                 COALESCE(AVG(confidence_score), 0),
	                 MAX(created_at)
	          FROM email_processed_guests WHERE user_id = $1`
	stats := &domain.ProcessingStats{}
	var last sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalEmailsProcessed, &stats.PendingCount, &stats.ApprovedCount,
		&stats.RejectedCount, &stats.ErrorCount, &stats.AvgConfidenceScore, &last,
	)
	if err != nil {
		return nil, err
	}
	if last.Valid {
		stats.LastEmailProcessed = &last.Time
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *processedEmailRepository) scanRecord(row rowScanner) (*domain.ProcessedEmail, error) {
	rec := &domain.ProcessedEmail{}
	var extracted []byte
	var guestID sql.NullInt64
	var processedAt sql.NullTime
	var processingErrors pq.StringArray

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.SenderEmail, &rec.EmailSubject, &rec.OriginalEmailContent,
		&extracted, &rec.ConfidenceScore, &processingErrors, &rec.AIModelUsed,
		&rec.ProcessingStatus, &guestID, &rec.RejectedReason, &rec.CreatedAt, &processedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &rec.ExtractedData); err != nil {
			return nil, fmt.Errorf("failed to decode extracted data: %w", err)
		}
	}
	rec.ProcessingErrors = processingErrors
	if guestID.Valid {
		rec.GuestID = &guestID.Int64
	}
	if processedAt.Valid {
		rec.ProcessedAt = &processedAt.Time
	}
	return rec, nil
}

func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
