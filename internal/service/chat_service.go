package service

import (
	"context"
	"fmt"
	"time"

	"codekickstart-be/internal/constant"
	"codekickstart-be/internal/dto"
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/pkg/auth"
	"codekickstart-be/internal/pkg/logger"
	"codekickstart-be/internal/repository/specification"
	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	GetChatHistory(ctx context.Context, identity auth.Identity, languageSlug string) ([]*dto.ChatHistoryItemResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, logger logger.ILogger) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// GetChatHistory returns an empty transcript for anonymous callers. The
// language filter is applied after the fetch, a user's full history stays
// small enough that a second index is not worth carrying.
func (s *chatService) GetChatHistory(ctx context.Context, identity auth.Identity, languageSlug string) ([]*dto.ChatHistoryItemResponse, error) {
	userId, ok := identity.UserId()
	if !ok {
		return []*dto.ChatHistoryItemResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatHistoryItemResponse, 0, len(messages))
	for _, m := range messages {
		if languageSlug != "" {
			if m.LanguageSlug == nil || *m.LanguageSlug != languageSlug {
				continue
			}
		}
		responses = append(responses, &dto.ChatHistoryItemResponse{
			Id:           m.Id,
			Message:      m.Message,
			Response:     m.Response,
			LanguageSlug: m.LanguageSlug,
			CreatedAt:    m.CreatedAt,
		})
	}
	return responses, nil
}

// SendMessage asks the tutor model and persists the exchange. A failed
// upstream call yields a canned reply and nothing is persisted, so the
// transcript only ever contains real answers.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contextBlock := ""
	if request.LanguageSlug != "" {
		language, err := uow.LanguageRepository().FindOne(ctx, specification.BySlug{Slug: request.LanguageSlug})
		if err != nil {
			return nil, err
		}
		if language != nil {
			contextBlock = fmt.Sprintf("Context: The user is asking about %s. %s", language.Name, language.Description)
		}
	}

	systemPrompt := fmt.Sprintf(constant.TutorSystemPromptTemplate, contextBlock)

	reply, err := s.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: constant.ChatRoleSystem, Content: systemPrompt},
			{Role: constant.ChatRoleUser, Content: request.Message},
		},
		llm.WithTemperature(constant.TutorTemperature),
		llm.WithMaxTokens(constant.TutorMaxTokens),
	)
	if err != nil {
		s.logger.Error("chat_service", "tutor model call failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return &dto.SendMessageResponse{Reply: constant.TutorUnavailableReply}, nil
	}
	if reply == "" {
		reply = constant.TutorEmptyReply
	}

	var languageSlug *string
	if request.LanguageSlug != "" {
		slug := request.LanguageSlug
		languageSlug = &slug
	}

	message := &entity.ChatMessage{
		Id:           uuid.New(),
		UserId:       userId,
		Message:      request.Message,
		Response:     reply,
		LanguageSlug: languageSlug,
		CreatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{Reply: reply}, nil
}
