// Package chat orchestrates conversation state for the view layer: implicit
// conversation creation on first send, and the optimistic message thread with
// rollback on failure.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"moneymong/internal/config"
	"moneymong/internal/datasource"
	"moneymong/internal/domain"
	"moneymong/internal/domain/models"
)

// Service sends messages, creating the conversation on first send when none
// exists yet.
type Service struct {
	ds     datasource.DataSource
	logger *slog.Logger
}

func NewService(ds datasource.DataSource, logger *slog.Logger) *Service {
	return &Service{ds: ds, logger: logger}
}

// SendOptions describe one send. An empty ConversationID triggers
// auto-create-on-first-send: DocumentID anchors the new conversation as
// report_based, otherwise it is general.
type SendOptions struct {
	ConversationID string
	DocumentID     string
	Content        string
}

// SendResult carries the server-confirmed entries and, when one was created,
// the new conversation.
type SendResult struct {
	Conversation *models.Conversation
	Messages     []models.Message
}

// Send delivers a message. Empty content is a no-op and returns (nil, nil);
// callers should not reach this with empty input, but it must never error.
func (s *Service) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	content := strings.TrimSpace(opts.Content)
	if content == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(content) > config.MaxMessageLength {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("message exceeds %d characters", config.MaxMessageLength),
		}
	}

	result := &SendResult{}
	conversationID := opts.ConversationID

	if conversationID == "" {
		conv, err := s.createForFirstSend(ctx, opts.DocumentID)
		if err != nil {
			return nil, err
		}
		result.Conversation = conv
		conversationID = conv.ID
	}

	confirmed, err := s.deliver(ctx, conversationID, content)
	if err != nil {
		return nil, err
	}
	result.Messages = confirmed
	return result, nil
}

func (s *Service) createForFirstSend(ctx context.Context, documentID string) (*models.Conversation, error) {
	req := models.CreateConversationRequest{SessionType: models.SessionGeneral}
	if documentID != "" {
		req.SessionType = models.SessionReportBased
		req.PrimaryDocumentID = documentID
	}

	conv, err := s.ds.CreateConversation(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("conversation created on first send",
		"id", conv.ID,
		"session_type", conv.SessionType,
	)
	return conv, nil
}

// deliver requires a non-empty conversation id and fails fast otherwise.
func (s *Service) deliver(ctx context.Context, conversationID, content string) ([]models.Message, error) {
	if conversationID == "" {
		return nil, &domain.ValidationError{Message: "conversation id is required to send a message"}
	}
	return s.ds.SendMessage(ctx, conversationID, models.SendMessageRequest{Content: content})
}
