package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks a language as saved by a user. The (UserId, LanguageSlug)
// pair is unique; the only mutation is existence flip via toggle.
type Bookmark struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	LanguageSlug string
	CreatedAt    time.Time
}
