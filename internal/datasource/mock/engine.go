// Package mock is the in-memory stand-in for the backend used in mock mode.
// It mirrors the live API's paginated response shapes byte for byte so the
// view layer carries no mode-specific branches, and produces deterministic
// assistant replies so the chat flow works fully offline.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"moneymong/internal/domain"
	"moneymong/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Engine serves the fixture dataset with the same query semantics as the
// backend's document-list endpoint. Safe for concurrent use.
type Engine struct {
	logger   *slog.Logger
	collator *collate.Collator
	now      func() time.Time

	mu        sync.RWMutex
	docs      []models.Document
	summaries map[string]*models.DocumentSummary
	convs     []models.Conversation
	messages  map[string][]models.Message
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger:    logger,
		collator:  collate.New(language.Korean),
		now:       time.Now,
		docs:      fixtureDocuments(),
		summaries: fixtureSummaries(),
		convs:     fixtureConversations(),
		messages:  fixtureMessages(),
	}
}

// ListDocuments applies search, date-range filter, sort and pagination over
// the fixture set. Total is the filtered count before the page slice.
func (e *Engine) ListDocuments(ctx context.Context, q models.DocumentQuery) (*models.Page[models.DocumentWithSummary], error) {
	_ = ctx
	q.ApplyDefaults()

	e.mu.RLock()
	defer e.mu.RUnlock()

	filtered := make([]models.Document, 0, len(e.docs))
	start, hasStart := parseDate(q.StartDate)
	end, hasEnd := parseDate(q.EndDate)
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, doc := range e.docs {
		if term != "" && !matchesSearch(doc, term) {
			continue
		}
		if hasStart || hasEnd {
			// Documents without a published date are excluded whenever a date
			// bound is active.
			published, ok := doc.PublishedAt()
			if !ok {
				continue
			}
			if hasStart && published.Before(start) {
				continue
			}
			if hasEnd && published.After(end) {
				continue
			}
		}
		filtered = append(filtered, doc)
	}

	e.sortDocuments(filtered, q.Sort, q.Order)

	total := len(filtered)
	lo := (q.Page - 1) * q.PageSize
	hi := lo + q.PageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	items := make([]models.DocumentWithSummary, 0, hi-lo)
	for _, doc := range filtered[lo:hi] {
		items = append(items, models.DocumentWithSummary{
			Document: doc,
			Summary:  e.summaries[doc.ID],
		})
	}

	return &models.Page[models.DocumentWithSummary]{Total: total, Items: items}, nil
}

// matchesSearch checks title, author and the JSON-serialized metadata for a
// case-insensitive substring hit.
func matchesSearch(doc models.Document, term string) bool {
	if strings.Contains(strings.ToLower(doc.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Author), term) {
		return true
	}
	if len(doc.Metadata) > 0 {
		if raw, err := json.Marshal(doc.Metadata); err == nil {
			return strings.Contains(strings.ToLower(string(raw)), term)
		}
	}
	return false
}

// sortDocuments sorts in place. published_date compares parsed timestamps
// with missing values treated as equal (the stable sort keeps their relative
// order); title uses locale-aware collation. Descending flips the comparator.
func (e *Engine) sortDocuments(docs []models.Document, field models.SortField, order models.SortOrder) {
	cmp := func(a, b models.Document) int {
		switch field {
		case models.SortTitle:
			return e.collator.CompareString(a.Title, b.Title)
		default:
			at, aok := a.PublishedAt()
			bt, bok := b.PublishedAt()
			if !aok || !bok {
				return 0
			}
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		c := cmp(docs[i], docs[j])
		if order == models.OrderDesc {
			c = -c
		}
		return c < 0
	})
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (e *Engine) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	_ = ctx
	e.mu.RLock()
	defer e.mu.RUnlock()

	for i := range e.docs {
		if e.docs[i].ID == id {
			doc := e.docs[i]
			return &doc, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("document not found: %s", id)}
}

func (e *Engine) GetDocumentSummary(ctx context.Context, documentID string) (*models.DocumentSummary, error) {
	_ = ctx
	e.mu.RLock()
	defer e.mu.RUnlock()

	if sum, ok := e.summaries[documentID]; ok {
		copied := *sum
		return &copied, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("document summary not found: %s", documentID)}
}

func (e *Engine) ListConversations(ctx context.Context) (*models.Page[models.Conversation], error) {
	_ = ctx
	e.mu.RLock()
	defer e.mu.RUnlock()

	items := make([]models.Conversation, len(e.convs))
	copy(items, e.convs)
	return &models.Page[models.Conversation]{Total: len(items), Items: items}, nil
}

func (e *Engine) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	_ = ctx
	e.mu.RLock()
	defer e.mu.RUnlock()

	for i := range e.convs {
		if e.convs[i].ID == id {
			conv := e.convs[i]
			return &conv, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("conversation not found: %s", id)}
}

func (e *Engine) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	_ = ctx
	if err := req.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now().UTC()
	conv := models.Conversation{
		ID:                "conv-" + uuid.NewString(),
		UserID:            fixtureUserID,
		Title:             req.Title,
		SessionType:       req.SessionType,
		PrimaryDocumentID: req.PrimaryDocumentID,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if conv.Title == "" && conv.PrimaryDocumentID != "" {
		for i := range e.docs {
			if e.docs[i].ID == conv.PrimaryDocumentID {
				conv.Title = e.docs[i].Title
				break
			}
		}
	}

	e.convs = append(e.convs, conv)
	e.logger.Debug("mock conversation created", "id", conv.ID, "session_type", conv.SessionType)
	return &conv, nil
}

func (e *Engine) ListMessages(ctx context.Context, conversationID string) (*models.Page[models.Message], error) {
	_ = ctx
	e.mu.RLock()
	defer e.mu.RUnlock()

	msgs := e.messages[conversationID]
	items := make([]models.Message, len(msgs))
	copy(items, msgs)
	return &models.Page[models.Message]{Total: len(items), Items: items}, nil
}

// SendMessage appends the user message and a deterministic assistant reply.
// The reply references the primary document for report-based conversations so
// the grounded-chat flow is visible offline.
func (e *Engine) SendMessage(ctx context.Context, conversationID string, req models.SendMessageRequest) ([]models.Message, error) {
	_ = ctx
	if err := req.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var conv *models.Conversation
	for i := range e.convs {
		if e.convs[i].ID == conversationID {
			conv = &e.convs[i]
			break
		}
	}
	if conv == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("conversation not found: %s", conversationID)}
	}

	now := e.now().UTC()
	userMsg := models.Message{
		ID:             "msg-" + uuid.NewString(),
		ConversationID: conversationID,
		Role:           models.RoleUser,
		Content:        req.Content,
		CreatedAt:      now,
	}
	reply := models.Message{
		ID:                "msg-" + uuid.NewString(),
		ConversationID:    conversationID,
		Role:              models.RoleAssistant,
		Content:           e.replyContent(conv, req.Content),
		FollowUpQuestions: replyFollowUps(conv),
		ModelVersion:      "mock-llm-v1",
		CreatedAt:         now.Add(time.Second),
	}

	e.messages[conversationID] = append(e.messages[conversationID], userMsg, reply)
	conv.UpdatedAt = reply.CreatedAt
	return []models.Message{userMsg, reply}, nil
}

func (e *Engine) replyContent(conv *models.Conversation, question string) string {
	var b strings.Builder
	if conv.SessionType == models.SessionReportBased {
		title := conv.PrimaryDocumentID
		for i := range e.docs {
			if e.docs[i].ID == conv.PrimaryDocumentID {
				title = e.docs[i].Title
				break
			}
		}
		fmt.Fprintf(&b, "「%s」 보고서를 기준으로 답변드립니다.\n\n", title)
		if sum, ok := e.summaries[conv.PrimaryDocumentID]; ok {
			b.WriteString(sum.SummaryShort)
			b.WriteString("\n\n")
		}
	}
	fmt.Fprintf(&b, "질문 주신 \"%s\" 관련 내용은 개발용 목업 응답입니다. 실제 분석은 라이브 모드에서 제공됩니다.", question)
	return b.String()
}

func replyFollowUps(conv *models.Conversation) []string {
	if conv.SessionType == models.SessionReportBased {
		return []string{
			"보고서의 핵심 결론을 요약해 주세요",
			"관련 리스크 요인은 무엇인가요?",
			"추가로 참고할 문서가 있나요?",
		}
	}
	return []string{
		"좀 더 자세히 설명해 주세요",
		"관련 보고서를 추천해 주세요",
	}
}
