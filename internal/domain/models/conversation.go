package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SessionType string

const (
	SessionGeneral     SessionType = "general"
	SessionReportBased SessionType = "report_based"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Conversation is a chat session. A report_based conversation is always
// anchored to one primary document; a general conversation never requires one.
type Conversation struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Title             string      `json:"title,omitempty"`
	SessionType       SessionType `json:"session_type"`
	PrimaryDocumentID string      `json:"primary_document_id,omitempty"`
	IsActive          bool        `json:"is_active"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Message belongs to one conversation. Message lists are ordered by created_at
// ascending and are append-only from the client's perspective. Optimistic
// client-side entries use a temporary id until the server confirms them.
type Message struct {
	ID                string    `json:"id"`
	ConversationID    string    `json:"conversation_id"`
	Role              Role      `json:"role"`
	Content           string    `json:"content"`
	FollowUpQuestions []string  `json:"follow_up_questions,omitempty"` // <= 3 suggestions
	ModelVersion      string    `json:"model_version,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateConversationRequest struct {
	SessionType       SessionType `json:"session_type"`
	PrimaryDocumentID string      `json:"primary_document_id,omitempty"`
	Title             string      `json:"title,omitempty"`
}

// Validate enforces the session-type invariant before the request leaves the
// client.
func (r CreateConversationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SessionType,
			validation.Required,
			validation.In(SessionGeneral, SessionReportBased),
		),
		validation.Field(&r.PrimaryDocumentID,
			validation.Required.When(r.SessionType == SessionReportBased).
				Error("report_based conversations require a primary document"),
			validation.Empty.When(r.SessionType == SessionGeneral),
		),
	)
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r SendMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}
