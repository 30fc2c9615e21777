package entity

import (
	"time"

	"github.com/google/uuid"
)

// Language is one reference entry of the learning catalog. Entries are seeded
// once and never updated or deleted afterwards; Slug is the stable identity.
type Language struct {
	Id          uuid.UUID
	Slug        string
	Name        string
	Icon        string
	Description string
	Purpose     string
	Concepts    []Concept
	Resources   LanguageResources
	SortOrder   int
	CreatedAt   time.Time
}

type Concept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type LanguageResources struct {
	Websites []ResourceLink `json:"websites"`
	Videos   []ResourceLink `json:"videos"`
	Books    []BookResource `json:"books"`
}

type ResourceLink struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	Description string `json:"description"`
}

type BookResource struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
}
