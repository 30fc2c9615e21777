package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message      string `json:"message" validate:"required"`
	LanguageSlug string `json:"language_slug,omitempty"`
}

type SendMessageResponse struct {
	Reply string `json:"reply"`
}

type ChatHistoryItemResponse struct {
	Id           uuid.UUID `json:"id"`
	Message      string    `json:"message"`
	Response     string    `json:"response"`
	LanguageSlug *string   `json:"language_slug,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
