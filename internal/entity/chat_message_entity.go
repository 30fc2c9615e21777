package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one tutor round-trip: the user's prompt and the generated
// response, optionally tagged with the language the user was reading.
// Rows are append-only; a failed tutor call produces no row.
type ChatMessage struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Message      string
	Response     string
	LanguageSlug *string
	CreatedAt    time.Time
}
