// Package datasource defines the single injected data-access capability the
// view layer consumes. Two variants exist: live (backed by the REST API) and
// mock (an in-memory engine mirroring the backend's response shapes exactly).
// The variant is selected once at startup so no view code branches on mode.
package datasource

import (
	"context"
	"log/slog"

	"moneymong/internal/api"
	"moneymong/internal/config"
	"moneymong/internal/datasource/mock"
	"moneymong/internal/domain/models"
)

type DataSource interface {
	ListDocuments(ctx context.Context, q models.DocumentQuery) (*models.Page[models.DocumentWithSummary], error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	GetDocumentSummary(ctx context.Context, documentID string) (*models.DocumentSummary, error)

	ListConversations(ctx context.Context) (*models.Page[models.Conversation], error)
	GetConversation(ctx context.Context, id string) (*models.Conversation, error)
	CreateConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error)

	ListMessages(ctx context.Context, conversationID string) (*models.Page[models.Message], error)
	// SendMessage returns the server-confirmed entries for the exchange: the
	// stored user message followed by the assistant reply.
	SendMessage(ctx context.Context, conversationID string, req models.SendMessageRequest) ([]models.Message, error)
}

// New selects the data source for the configured mode.
func New(cfg *config.Config, client *api.Client, logger *slog.Logger) DataSource {
	if cfg.Mode == config.ModeLive {
		logger.Info("using live data source", "base_url", cfg.APIBaseURL)
		return NewLive(client)
	}
	logger.Info("using mock data source")
	return mock.NewEngine(logger)
}
