package mapper

import (
	"encoding/json"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/model"

	"gorm.io/datatypes"
)

type LanguageMapper struct{}

func NewLanguageMapper() *LanguageMapper {
	return &LanguageMapper{}
}

func (m *LanguageMapper) ToEntity(l *model.Language) *entity.Language {
	if l == nil {
		return nil
	}

	// Concepts/resources are written only by our own seed routine, so a
	// decode miss leaves the zero value rather than failing the read.
	var concepts []entity.Concept
	_ = json.Unmarshal(l.Concepts, &concepts)

	var resources entity.LanguageResources
	_ = json.Unmarshal(l.Resources, &resources)

	return &entity.Language{
		Id:          l.Id,
		Slug:        l.Slug,
		Name:        l.Name,
		Icon:        l.Icon,
		Description: l.Description,
		Purpose:     l.Purpose,
		Concepts:    concepts,
		Resources:   resources,
		SortOrder:   l.SortOrder,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *LanguageMapper) ToModel(l *entity.Language) *model.Language {
	if l == nil {
		return nil
	}

	conceptsJSON, _ := json.Marshal(l.Concepts)
	resourcesJSON, _ := json.Marshal(l.Resources)

	return &model.Language{
		Id:          l.Id,
		Slug:        l.Slug,
		Name:        l.Name,
		Icon:        l.Icon,
		Description: l.Description,
		Purpose:     l.Purpose,
		Concepts:    datatypes.JSON(conceptsJSON),
		Resources:   datatypes.JSON(resourcesJSON),
		SortOrder:   l.SortOrder,
		CreatedAt:   l.CreatedAt,
	}
}
