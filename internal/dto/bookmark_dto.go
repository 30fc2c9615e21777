package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookmarkResponse struct {
	Id           uuid.UUID `json:"id"`
	LanguageSlug string    `json:"language_slug"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookmarkStatusResponse struct {
	LanguageSlug string `json:"language_slug"`
	Bookmarked   bool   `json:"bookmarked"`
}

type ToggleBookmarkResponse struct {
	LanguageSlug string `json:"language_slug"`
	Bookmarked   bool   `json:"bookmarked"`
}
