package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Language persists concepts and resources as JSONB blobs: the catalog is
// read-only reference data, never queried by inner fields.
type Language struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug        string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Icon        string         `gorm:"type:varchar(16);not null"`
	Description string         `gorm:"type:text;not null"`
	Purpose     string         `gorm:"type:text;not null"`
	Concepts    datatypes.JSON `gorm:"type:jsonb;not null"`
	Resources   datatypes.JSON `gorm:"type:jsonb;not null"`
	SortOrder   int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Language) TableName() string {
	return "languages"
}
