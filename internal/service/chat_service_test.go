package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codekickstart-be/internal/constant"
	"codekickstart-be/internal/dto"
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newChatServiceForTest(provider *fakeLLMProvider) (IChatService, *fakeUowFactory) {
	factory := newFakeUowFactory()
	factory.uow.languages.languages = []*entity.Language{
		{
			Id:          uuid.New(),
			Slug:        "python",
			Name:        "Python",
			Description: "Python is a high-level, interpreted programming language known for its simple syntax and readability.",
		},
	}
	return NewChatService(factory, provider, nopLogger{}), factory
}

func TestSendMessage_PersistsExchange(t *testing.T) {
	provider := &fakeLLMProvider{reply: "Loops repeat code! 🔁"}
	svc, factory := newChatServiceForTest(provider)
	userId := uuid.New()

	res, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		Message:      "What is a loop?",
		LanguageSlug: "python",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Loops repeat code! 🔁", res.Reply)

	assert.Len(t, factory.uow.chats.messages, 1)
	saved := factory.uow.chats.messages[0]
	assert.Equal(t, userId, saved.UserId)
	assert.Equal(t, "What is a loop?", saved.Message)
	assert.Equal(t, "Loops repeat code! 🔁", saved.Response)
	assert.NotNil(t, saved.LanguageSlug)
	assert.Equal(t, "python", *saved.LanguageSlug)
}

func TestSendMessage_BuildsPromptWithLanguageContext(t *testing.T) {
	provider := &fakeLLMProvider{reply: "ok"}
	svc, _ := newChatServiceForTest(provider)

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Message:      "Where do I start?",
		LanguageSlug: "python",
	})
	assert.NoError(t, err)

	assert.Len(t, provider.lastHistory, 2)
	system := provider.lastHistory[0]
	assert.Equal(t, constant.ChatRoleSystem, system.Role)
	assert.Contains(t, system.Content, "CodeKickstart AI")
	assert.Contains(t, system.Content, "Context: The user is asking about Python.")

	user := provider.lastHistory[1]
	assert.Equal(t, constant.ChatRoleUser, user.Role)
	assert.Equal(t, "Where do I start?", user.Content)

	assert.Equal(t, float64(constant.TutorTemperature), provider.lastOpts.Temperature)
	assert.Equal(t, constant.TutorMaxTokens, provider.lastOpts.MaxTokens)
}

func TestSendMessage_NoLanguageContext(t *testing.T) {
	provider := &fakeLLMProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(provider)

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Message: "What language should I learn first?",
	})
	assert.NoError(t, err)

	system := provider.lastHistory[0]
	assert.False(t, strings.Contains(system.Content, "Context:"))

	saved := factory.uow.chats.messages[0]
	assert.Nil(t, saved.LanguageSlug)
}

func TestSendMessage_UpstreamFailureReturnsCannedReplyWithoutPersisting(t *testing.T) {
	provider := &fakeLLMProvider{err: errors.New("connection refused")}
	svc, factory := newChatServiceForTest(provider)

	res, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Message: "Hello?",
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.TutorUnavailableReply, res.Reply)
	assert.Empty(t, factory.uow.chats.messages)
}

func TestSendMessage_EmptyCompletionIsCoerced(t *testing.T) {
	provider := &fakeLLMProvider{reply: ""}
	svc, factory := newChatServiceForTest(provider)

	res, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Message: "Hello?",
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.TutorEmptyReply, res.Reply)
	assert.Len(t, factory.uow.chats.messages, 1)
	assert.Equal(t, constant.TutorEmptyReply, factory.uow.chats.messages[0].Response)
}

func TestGetChatHistory_AnonymousIsEmpty(t *testing.T) {
	svc, factory := newChatServiceForTest(&fakeLLMProvider{})
	factory.uow.chats.messages = []*entity.ChatMessage{
		{Id: uuid.New(), UserId: uuid.New(), Message: "hi", Response: "hello"},
	}

	res, err := svc.GetChatHistory(context.Background(), auth.Anonymous(), "")
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestGetChatHistory_FiltersByLanguageSlug(t *testing.T) {
	svc, factory := newChatServiceForTest(&fakeLLMProvider{})
	userId := uuid.New()
	python := "python"
	rust := "rust"
	factory.uow.chats.messages = []*entity.ChatMessage{
		{Id: uuid.New(), UserId: userId, Message: "a", Response: "ra", LanguageSlug: &python},
		{Id: uuid.New(), UserId: userId, Message: "b", Response: "rb", LanguageSlug: &rust},
		{Id: uuid.New(), UserId: userId, Message: "c", Response: "rc"},
		{Id: uuid.New(), UserId: uuid.New(), Message: "d", Response: "rd", LanguageSlug: &python},
	}

	res, err := svc.GetChatHistory(context.Background(), auth.Authenticated(userId), "python")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "a", res[0].Message)

	res, err = svc.GetChatHistory(context.Background(), auth.Authenticated(userId), "")
	assert.NoError(t, err)
	assert.Len(t, res, 3)
}
