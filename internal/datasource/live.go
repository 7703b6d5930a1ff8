package datasource

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"moneymong/internal/api"
	"moneymong/internal/domain"
	"moneymong/internal/domain/models"
)

// Live delegates every call to the backend REST API.
type Live struct {
	client *api.Client
}

func NewLive(client *api.Client) *Live {
	return &Live{client: client}
}

func (l *Live) ListDocuments(ctx context.Context, q models.DocumentQuery) (*models.Page[models.DocumentWithSummary], error) {
	q.ApplyDefaults()

	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	params.Set("sort", string(q.Sort))
	params.Set("order", string(q.Order))
	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}

	var page models.Page[models.DocumentWithSummary]
	if err := l.client.Get(ctx, "/api/v1/documents?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (l *Live) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if err := l.client.Get(ctx, "/api/v1/documents/"+url.PathEscape(id), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (l *Live) GetDocumentSummary(ctx context.Context, documentID string) (*models.DocumentSummary, error) {
	var sum models.DocumentSummary
	path := fmt.Sprintf("/api/v1/documents/%s/summary", url.PathEscape(documentID))
	if err := l.client.Get(ctx, path, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (l *Live) ListConversations(ctx context.Context) (*models.Page[models.Conversation], error) {
	var page models.Page[models.Conversation]
	if err := l.client.Get(ctx, "/api/v1/conversations", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (l *Live) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	var conv models.Conversation
	if err := l.client.Get(ctx, "/api/v1/conversations/"+url.PathEscape(id), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (l *Live) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	var conv models.Conversation
	if err := l.client.Post(ctx, "/api/v1/conversations", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (l *Live) ListMessages(ctx context.Context, conversationID string) (*models.Page[models.Message], error) {
	var page models.Page[models.Message]
	path := fmt.Sprintf("/api/v1/conversations/%s/messages", url.PathEscape(conversationID))
	if err := l.client.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (l *Live) SendMessage(ctx context.Context, conversationID string, req models.SendMessageRequest) ([]models.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	var page models.Page[models.Message]
	path := fmt.Sprintf("/api/v1/conversations/%s/messages", url.PathEscape(conversationID))
	if err := l.client.Post(ctx, path, req, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}
