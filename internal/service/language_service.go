package service

import (
	"context"
	"errors"

	"codekickstart-be/internal/constant"
	"codekickstart-be/internal/dto"
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/contract"
	"codekickstart-be/internal/repository/specification"
	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/internal/seed"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheKeyAllLanguages   = "languages:all"
	cacheKeyLanguagePrefix = "languages:slug:"
)

type ILanguageService interface {
	GetAllLanguages(ctx context.Context) ([]*dto.LanguageResponse, error)
	GetLanguageBySlug(ctx context.Context, slug string) (*dto.LanguageResponse, error)
	SeedLanguages(ctx context.Context) (*dto.SeedLanguagesResponse, error)
}

type languageService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewLanguageService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) ILanguageService {
	return &languageService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func toLanguageResponse(e *entity.Language) *dto.LanguageResponse {
	concepts := make([]dto.ConceptDTO, len(e.Concepts))
	for i, c := range e.Concepts {
		concepts[i] = dto.ConceptDTO{
			Title:       c.Title,
			Description: c.Description,
			Example:     c.Example,
		}
	}

	websites := make([]dto.ResourceLinkDTO, len(e.Resources.Websites))
	for i, w := range e.Resources.Websites {
		websites[i] = dto.ResourceLinkDTO{Name: w.Name, Url: w.Url, Description: w.Description}
	}
	videos := make([]dto.ResourceLinkDTO, len(e.Resources.Videos))
	for i, v := range e.Resources.Videos {
		videos[i] = dto.ResourceLinkDTO{Name: v.Name, Url: v.Url, Description: v.Description}
	}
	books := make([]dto.BookResourceDTO, len(e.Resources.Books))
	for i, b := range e.Resources.Books {
		books[i] = dto.BookResourceDTO{Name: b.Name, Author: b.Author, Description: b.Description}
	}

	return &dto.LanguageResponse{
		Id:          e.Id,
		Slug:        e.Slug,
		Name:        e.Name,
		Icon:        e.Icon,
		Description: e.Description,
		Purpose:     e.Purpose,
		Concepts:    concepts,
		Resources: dto.LanguageResourcesDTO{
			Websites: websites,
			Videos:   videos,
			Books:    books,
		},
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
	}
}

func (s *languageService) GetAllLanguages(ctx context.Context) ([]*dto.LanguageResponse, error) {
	if cached, found := s.cache.Get(cacheKeyAllLanguages); found {
		return cached.([]*dto.LanguageResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	languages, err := uow.LanguageRepository().FindAll(ctx,
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LanguageResponse, len(languages))
	for i, l := range languages {
		responses[i] = toLanguageResponse(l)
	}

	s.cache.Set(cacheKeyAllLanguages, responses, gocache.DefaultExpiration)
	return responses, nil
}

func (s *languageService) GetLanguageBySlug(ctx context.Context, slug string) (*dto.LanguageResponse, error) {
	cacheKey := cacheKeyLanguagePrefix + slug
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.LanguageResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	language, err := uow.LanguageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, nil
	}

	response := toLanguageResponse(language)
	s.cache.Set(cacheKey, response, gocache.DefaultExpiration)
	return response, nil
}

// SeedLanguages inserts the built-in catalog. The unique index on slug keeps
// concurrent seed calls from double-inserting.
func (s *languageService) SeedLanguages(ctx context.Context) (*dto.SeedLanguagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	count, err := uow.LanguageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedLanguagesResponse{Result: constant.SeedResultAlreadySeeded}, nil
	}

	languages := seed.Languages()
	for _, l := range languages {
		l.Id = uuid.New()
	}

	if err := uow.LanguageRepository().CreateBatch(ctx, languages); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			// Lost the race against a concurrent seed call.
			return &dto.SeedLanguagesResponse{Result: constant.SeedResultAlreadySeeded}, nil
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.cache.Flush()
	return &dto.SeedLanguagesResponse{Result: constant.SeedResultSuccess}, nil
}
