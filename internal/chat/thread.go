package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"moneymong/internal/domain/models"
)

const tentativePrefix = "tmp-"

// IsTentative reports whether a message id is a local-only optimistic id
// rather than one assigned by the server.
func IsTentative(id string) bool {
	return strings.HasPrefix(id, tentativePrefix)
}

// Thread is the visible message list for one conversation, including
// tentative entries that have not been confirmed by the server yet. Mutated
// only from the UI event loop, so it carries no locking.
//
// The tentative-entity pattern: a sent message is appended synchronously with
// a local-only id, then either reconciled with the server-confirmed entries or
// removed — exactly that entry, by id — when the send fails.
type Thread struct {
	conversationID string
	messages       []models.Message
}

// NewThread starts a thread from server history. history is ordered by
// created_at ascending, as the backend returns it.
func NewThread(conversationID string, history []models.Message) *Thread {
	msgs := make([]models.Message, len(history))
	copy(msgs, history)
	return &Thread{conversationID: conversationID, messages: msgs}
}

func (t *Thread) ConversationID() string { return t.conversationID }

// SetConversationID records the id assigned by auto-create-on-first-send.
func (t *Thread) SetConversationID(id string) { t.conversationID = id }

// Messages returns the visible list, tentative entries included.
func (t *Thread) Messages() []models.Message {
	out := make([]models.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// AppendTentative adds an optimistic user message and returns its temporary
// id.
func (t *Thread) AppendTentative(content string) string {
	id := tentativePrefix + uuid.NewString()
	t.messages = append(t.messages, models.Message{
		ID:             id,
		ConversationID: t.conversationID,
		Role:           models.RoleUser,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	})
	return id
}

// Confirm replaces the tentative entry with the server-confirmed entries, in
// order. Unknown ids are ignored.
func (t *Thread) Confirm(tentativeID string, confirmed []models.Message) {
	idx := t.indexOf(tentativeID)
	if idx < 0 {
		t.messages = append(t.messages, confirmed...)
		return
	}
	rest := make([]models.Message, 0, len(t.messages)-1+len(confirmed))
	rest = append(rest, t.messages[:idx]...)
	rest = append(rest, confirmed...)
	rest = append(rest, t.messages[idx+1:]...)
	t.messages = rest
}

// Rollback removes exactly the tentative entry, leaving every other message
// intact.
func (t *Thread) Rollback(tentativeID string) {
	idx := t.indexOf(tentativeID)
	if idx < 0 {
		return
	}
	t.messages = append(t.messages[:idx], t.messages[idx+1:]...)
}

func (t *Thread) indexOf(id string) int {
	for i := range t.messages {
		if t.messages[i].ID == id {
			return i
		}
	}
	return -1
}
