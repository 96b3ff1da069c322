package service

import (
	"context"
	"fmt"
	"time"

	"sric-access-backend/internal/ai"
	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/repository"
)

type processorService struct {
	sender    SenderService
	quota     QuotaService
	extractor ai.Extractor
	guestRepo repository.GuestRepository
	auditRepo repository.ProcessedEmailRepository
}

func NewProcessorService(
	sender SenderService,
	quota QuotaService,
	extractor ai.Extractor,
	guestRepo repository.GuestRepository,
	auditRepo repository.ProcessedEmailRepository,
) ProcessorService {
	return &processorService{
		sender:    sender,
		quota:     quota,
		extractor: extractor,
		guestRepo: guestRepo,
		auditRepo: auditRepo,
	}
}

// ProcessIncomingEmail runs a single forward pass with no retries:
// authorize, check quota, extract, create guests, audit. Every failure
// is reported as a structured result; this is the one place where even
// a panic is downgraded to a failure result instead of reaching the
// caller.
func (s *processorService) ProcessIncomingEmail(ctx context.Context, from, subject, content string) (result *domain.ProcessResult) {
	result = &domain.ProcessResult{Errors: []string{}}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic during email processing", "from", from, "panic", r)
			result = &domain.ProcessResult{
				Success: false,
				Message: "Unexpected processing error",
				Errors:  []string{fmt.Sprint(r)},
			}
		}
	}()

	// 1. Verify sender
	senderCheck := s.sender.Authorize(ctx, from)
	if !senderCheck.Valid {
		result.Errors = append(result.Errors, senderCheck.Error)
		result.Message = "Unauthorized sender"
		return result
	}
	user := senderCheck.Profile

	// 2. Check processing limits
	limitCheck := s.quota.Check(ctx, user.UserID, user.MaxDailyEmailProcessing)
	if !limitCheck.CanProcess {
		if limitCheck.Error != "" {
			result.Errors = append(result.Errors, limitCheck.Error)
		} else {
			result.Errors = append(result.Errors, "Daily processing limit exceeded")
		}
		result.Message = fmt.Sprintf("Daily limit reached (%d/%d)", limitCheck.CurrentCount, limitCheck.DailyLimit)
		return result
	}

	// 3. Extract guest data
	extracted := s.extractor.Extract(ctx, content, from)
	if len(extracted.Guests) == 0 {
		result.Errors = append(result.Errors, "No valid guest information found in email")
		result.Message = "Unable to extract guest details"
		return result
	}

	// 4. Create guests. A single failed insert is recorded and must
	// not block the remaining entries.
	var createdGuests []domain.Guest
	for _, guestData := range extracted.Guests {
		guest := &domain.Guest{
			Name:             guestData.Name,
			VisitDate:        guestData.VisitDate,
			EstimatedArrival: guestData.EstimatedArrival,
			ArrivalStatus:    false,
			FloorAccess:      guestData.FloorAccess,
			InviterID:        user.UserID,
			Organization:     guestData.Organization,
			RequesterEmail:   from,
		}
		if err := s.guestRepo.Create(ctx, guest); err != nil {
			logger.Error("Failed to create guest", "name", guestData.Name, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to create guest: %s - %s", guestData.Name, err.Error()))
			continue
		}
		logger.Info("Guest created", "name", guest.Name, "id", guest.ID)
		createdGuests = append(createdGuests, *guest)
	}

	if len(createdGuests) == 0 {
		result.Message = "Failed to create any guests"
		return result
	}

	// 5. Audit trail. Best-effort: guest creation has already
	// succeeded, so audit failures are warnings only.
	var recordID *int64
	audit := &domain.ProcessedEmail{
		UserID:               user.UserID,
		SenderEmail:          user.Email,
		EmailSubject:         subject,
		OriginalEmailContent: content,
		ExtractedData:        *extracted,
		ConfidenceScore:      extracted.ConfidenceScore,
		ProcessingErrors:     extracted.Errors,
		AIModelUsed:          s.extractor.ModelName(),
		ProcessingStatus:     domain.ProcessingStatusPending,
	}
	if err := s.auditRepo.Create(ctx, audit); err != nil {
		logger.Warn("Failed to save audit record", "user_id", user.UserID, "error", err)
	} else {
		recordID = &audit.ID
		if err := s.auditRepo.MarkApproved(ctx, audit.ID, createdGuests[0].ID, time.Now()); err != nil {
			logger.Warn("Failed to update audit record", "record_id", audit.ID, "error", err)
		}
	}

	// 6. Success
	result.Success = true
	result.Message = fmt.Sprintf("Successfully created %d guest(s) from email with %.1f%% confidence",
		len(createdGuests), extracted.ConfidenceScore*100)
	result.Data = &domain.ProcessData{
		RecordID:        recordID,
		CreatedGuests:   createdGuests,
		ExtractedGuests: extracted.Guests,
		ConfidenceScore: extracted.ConfidenceScore,
		ProcessingNotes: extracted.ProcessingNotes,
		UserInfo: domain.UserInfo{
			Name:           user.FullName,
			Organization:   user.Organization,
			RemainingDaily: limitCheck.Remaining - 1,
		},
	}
	return result
}
