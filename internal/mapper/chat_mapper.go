package mapper

import (
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:           msg.Id,
		UserId:       msg.UserId,
		Message:      msg.Message,
		Response:     msg.Response,
		LanguageSlug: msg.LanguageSlug,
		CreatedAt:    msg.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:           msg.Id,
		UserId:       msg.UserId,
		Message:      msg.Message,
		Response:     msg.Response,
		LanguageSlug: msg.LanguageSlug,
		CreatedAt:    msg.CreatedAt,
	}
}
