package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConceptDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type ResourceLinkDTO struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	Description string `json:"description"`
}

type BookResourceDTO struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

type LanguageResourcesDTO struct {
	Websites []ResourceLinkDTO `json:"websites"`
	Videos   []ResourceLinkDTO `json:"videos"`
	Books    []BookResourceDTO `json:"books"`
}

type LanguageResponse struct {
	Id          uuid.UUID            `json:"id"`
	Slug        string               `json:"slug"`
	Name        string               `json:"name"`
	Icon        string               `json:"icon"`
	Description string               `json:"description"`
	Purpose     string               `json:"purpose"`
	Concepts    []ConceptDTO         `json:"concepts"`
	Resources   LanguageResourcesDTO `json:"resources"`
	SortOrder   int                  `json:"sort_order"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SeedLanguagesResponse struct {
	Result string `json:"result"`
}
