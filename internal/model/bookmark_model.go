package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark carries a composite unique index so a racing duplicate toggle
// insert is rejected by the database instead of producing a second row.
type Bookmark struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_language;index"`
	LanguageSlug string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_bookmarks_user_language"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Bookmark) TableName() string {
	return "user_bookmarks"
}
