package config

const (
	// MaxMessageLength is the maximum length for a chat message sent from the
	// client. The backend enforces its own limit; this keeps obviously broken
	// input from ever leaving the client.
	MaxMessageLength = 4000

	// MaxSearchLength is the maximum length for the gallery search input.
	MaxSearchLength = 200

	// MaxFollowUpQuestions is the number of suggested follow-up questions an
	// assistant message may carry.
	MaxFollowUpQuestions = 3

	// SummaryShortLimit and SummaryLongLimit mirror the backend's summary
	// field budgets (characters, not bytes).
	SummaryShortLimit = 200
	SummaryLongLimit  = 1000
)
