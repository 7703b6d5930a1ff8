package ui

import (
	"moneymong/internal/chat"
	"moneymong/internal/domain/models"
)

// Bubble Tea messages. Network work runs as commands and reports back through
// these; the update loop itself never blocks.

// searchDebounceMsg fires when the search quiet period elapses. The seq is
// compared against the gallery's current sequence so only the timer armed by
// the last keystroke dispatches a query.
type searchDebounceMsg struct {
	seq int
}

// documentsPageMsg carries one gallery page. Stale responses (seq behind the
// gallery's current sequence) are dropped: last response wins.
type documentsPageMsg struct {
	seq  int
	page *models.Page[models.DocumentWithSummary]
	err  error
}

type authDoneMsg struct {
	user *models.User
	err  error
}

// userResolvedMsg carries the GET /auth/me result, used to resolve the
// account behind a stored session and after a code exchange that returned no
// user payload.
type userResolvedMsg struct {
	user *models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

// chatOpenedMsg carries everything the chat view needs when a document is
// opened: the document, its summary (nil when none exists) and the resumed
// conversation with its history, if one was found.
type chatOpenedMsg struct {
	doc      *models.Document
	summary  *models.DocumentSummary
	conv     *models.Conversation
	messages []models.Message
	err      error
}

// sendDoneMsg reports one optimistic send. tentativeID identifies the thread
// entry to confirm or roll back.
type sendDoneMsg struct {
	tentativeID string
	result      *chat.SendResult
	err         error
}

// SessionExpiredMsg is sent into the program when a token refresh fails and
// the client drops back to the logged-out state. The entry point wires the API
// client's expiry hook to Program.Send with this message.
type SessionExpiredMsg struct{}
