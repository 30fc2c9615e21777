package service

import (
	"context"
	"errors"
	"time"

	"codekickstart-be/internal/dto"
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/pkg/auth"
	"codekickstart-be/internal/repository/contract"
	"codekickstart-be/internal/repository/specification"
	"codekickstart-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrLanguageNotFound = errors.New("language not found")

type IBookmarkService interface {
	GetBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error)
	GetBookmarkStatus(ctx context.Context, identity auth.Identity, slug string) (*dto.BookmarkStatusResponse, error)
	ToggleBookmark(ctx context.Context, userId uuid.UUID, slug string) (*dto.ToggleBookmarkResponse, error)
}

type bookmarkService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBookmarkService(uowFactory unitofwork.RepositoryFactory) IBookmarkService {
	return &bookmarkService{
		uowFactory: uowFactory,
	}
}

func (s *bookmarkService) GetBookmarks(ctx context.Context, userId uuid.UUID) ([]*dto.BookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	bookmarks, err := uow.BookmarkRepository().FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		responses[i] = &dto.BookmarkResponse{
			Id:           b.Id,
			LanguageSlug: b.LanguageSlug,
			CreatedAt:    b.CreatedAt,
		}
	}
	return responses, nil
}

// GetBookmarkStatus reports false for anonymous callers instead of failing.
func (s *bookmarkService) GetBookmarkStatus(ctx context.Context, identity auth.Identity, slug string) (*dto.BookmarkStatusResponse, error) {
	response := &dto.BookmarkStatusResponse{LanguageSlug: slug}

	userId, ok := identity.UserId()
	if !ok {
		return response, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	bookmark, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByUserId{UserId: userId},
		specification.ByLanguageSlug{Slug: slug},
	)
	if err != nil {
		return nil, err
	}

	response.Bookmarked = bookmark != nil
	return response, nil
}

// ToggleBookmark removes the bookmark when it exists and creates it otherwise.
// The composite unique index on (user_id, language_slug) closes the window
// between the lookup and the insert under concurrent toggles.
func (s *bookmarkService) ToggleBookmark(ctx context.Context, userId uuid.UUID, slug string) (*dto.ToggleBookmarkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	language, err := uow.LanguageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByUserId{UserId: userId},
		specification.ByLanguageSlug{Slug: slug},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := uow.BookmarkRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return &dto.ToggleBookmarkResponse{LanguageSlug: slug, Bookmarked: false}, nil
	}

	bookmark := &entity.Bookmark{
		Id:           uuid.New(),
		UserId:       userId,
		LanguageSlug: slug,
		CreatedAt:    time.Now(),
	}
	if err := uow.BookmarkRepository().Create(ctx, bookmark); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			// A concurrent toggle inserted it first, the end state is the same.
			return &dto.ToggleBookmarkResponse{LanguageSlug: slug, Bookmarked: true}, nil
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.ToggleBookmarkResponse{LanguageSlug: slug, Bookmarked: true}, nil
}
