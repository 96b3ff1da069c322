package ingest

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"sric-access-backend/internal/config"
	"sric-access-backend/internal/logger"
	"sric-access-backend/internal/service"
)

const mailboxUser = "me"

// GmailPoller fetches unread guest-request emails from the shared
// mailbox and runs each through the processing pipeline. A message is
// marked read only after the pipeline returns, so a crash mid-batch
// means the message is retried on the next poll.
type GmailPoller struct {
	svc       *gmail.Service
	processor service.ProcessorService
	filter    Filter
	query     string
	batchSize int64
}

// NewGmailPoller builds a poller from OAuth2 refresh-token
// credentials. The token source refreshes access tokens on demand.
func NewGmailPoller(ctx context.Context, cfg config.GmailConfig, processor service.ProcessorService, filter Filter) (*GmailPoller, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailModifyScope},
	}
	token := &oauth2.Token{RefreshToken: cfg.RefreshToken}
	ts := oauthCfg.TokenSource(ctx, token)

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &GmailPoller{
		svc:       svc,
		processor: processor,
		filter:    filter,
		query:     cfg.Query,
		batchSize: cfg.BatchSize,
	}, nil
}

// Poll runs one polling cycle. Per-message failures are logged and
// skipped; the message stays unread and is retried next cycle.
func (p *GmailPoller) Poll(ctx context.Context) error {
	log := logger.Get()

	logger.ExternalServiceCall("gmail", "messages.list")
	resp, err := p.svc.Users.Messages.List(mailboxUser).
		Q(p.query).
		MaxResults(p.batchSize).
		Context(ctx).
		Do()
	logger.ExternalServiceResult("gmail", "messages.list", err)
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(resp.Messages) == 0 {
		log.Debug("no unread messages matched the mailbox query")
		return nil
	}
	log.Info("polling mailbox", "matched", len(resp.Messages))

	for _, ref := range resp.Messages {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.handleMessage(ctx, ref.Id)
	}
	return nil
}

func (p *GmailPoller) handleMessage(ctx context.Context, messageID string) {
	log := logger.Get()

	fresh, err := p.filter.IsNew(ctx, messageID)
	if err != nil {
		// Cache trouble is not fatal; the pipeline tolerates a
		// duplicate run far better than a dropped message.
		log.Warn("dedup check failed, processing anyway", "message_id", messageID, "error", err)
	} else if !fresh {
		log.Debug("skipping already-seen message", "message_id", messageID)
		return
	}

	msg, err := p.svc.Users.Messages.Get(mailboxUser, messageID).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		log.Error("failed to fetch message", "message_id", messageID, "error", err)
		return
	}

	from := headerValue(msg.Payload, "From")
	subject := headerValue(msg.Payload, "Subject")
	content := messageBody(msg.Payload)
	if content == "" {
		content = msg.Snippet
	}

	result := p.processor.ProcessIncomingEmail(ctx, from, subject, content)
	if !result.Success {
		// Leave the message unread; the dedup cache keeps it out of
		// the next polls while its TTL holds.
		log.Warn("mailbox message not processed", "message_id", messageID, "message", result.Message, "errors", result.Errors)
		return
	}

	log.Info("processed mailbox message", "message_id", messageID, "message", result.Message)
	if err := p.markRead(ctx, messageID); err != nil {
		log.Error("failed to mark message read", "message_id", messageID, "error", err)
	}
}

func (p *GmailPoller) markRead(ctx context.Context, messageID string) error {
	_, err := p.svc.Users.Messages.Modify(mailboxUser, messageID, &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"UNREAD"},
	}).Context(ctx).Do()
	return err
}
