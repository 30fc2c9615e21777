package mapper

import (
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/model"
)

type BookmarkMapper struct{}

func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{}
}

func (m *BookmarkMapper) ToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	return &entity.Bookmark{
		Id:           b.Id,
		UserId:       b.UserId,
		LanguageSlug: b.LanguageSlug,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}
	return &model.Bookmark{
		Id:           b.Id,
		UserId:       b.UserId,
		LanguageSlug: b.LanguageSlug,
		CreatedAt:    b.CreatedAt,
	}
}
