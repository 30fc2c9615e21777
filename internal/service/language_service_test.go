package service

import (
	"context"
	"testing"

	"codekickstart-be/internal/constant"
	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/contract"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func newLanguageServiceForTest() (ILanguageService, *fakeUowFactory) {
	factory := newFakeUowFactory()
	svc := NewLanguageService(factory, gocache.New(gocache.NoExpiration, 0))
	return svc, factory
}

func TestSeedLanguages_InsertsCatalogOnce(t *testing.T) {
	svc, factory := newLanguageServiceForTest()
	ctx := context.Background()

	res, err := svc.SeedLanguages(ctx)
	assert.NoError(t, err)
	assert.Equal(t, constant.SeedResultSuccess, res.Result)
	assert.Len(t, factory.uow.languages.languages, 6)

	res, err = svc.SeedLanguages(ctx)
	assert.NoError(t, err)
	assert.Equal(t, constant.SeedResultAlreadySeeded, res.Result)
	assert.Len(t, factory.uow.languages.languages, 6)
}

func TestSeedLanguages_LosingInsertRaceReportsAlreadySeeded(t *testing.T) {
	svc, factory := newLanguageServiceForTest()
	factory.uow.languages.createErr = contract.ErrDuplicate

	res, err := svc.SeedLanguages(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, constant.SeedResultAlreadySeeded, res.Result)
}

func TestGetLanguageBySlug(t *testing.T) {
	svc, factory := newLanguageServiceForTest()
	factory.uow.languages.languages = []*entity.Language{
		{Slug: "python", Name: "Python", Icon: "🐍"},
	}

	res, err := svc.GetLanguageBySlug(context.Background(), "python")
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, "Python", res.Name)

	res, err = svc.GetLanguageBySlug(context.Background(), "cobol")
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestGetAllLanguages_ServesFromCacheUntilSeedFlushes(t *testing.T) {
	svc, factory := newLanguageServiceForTest()
	ctx := context.Background()

	res, err := svc.GetAllLanguages(ctx)
	assert.NoError(t, err)
	assert.Empty(t, res)

	// A direct repo write is invisible while the cached read is live.
	factory.uow.languages.languages = append(factory.uow.languages.languages,
		&entity.Language{Slug: "python", Name: "Python"},
	)
	res, err = svc.GetAllLanguages(ctx)
	assert.NoError(t, err)
	assert.Empty(t, res)

	// Seeding flushes the cache.
	factory.uow.languages.languages = nil
	_, err = svc.SeedLanguages(ctx)
	assert.NoError(t, err)

	res, err = svc.GetAllLanguages(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 6)
}

func TestSeedLanguages_CatalogContent(t *testing.T) {
	svc, factory := newLanguageServiceForTest()

	_, err := svc.SeedLanguages(context.Background())
	assert.NoError(t, err)

	slugs := make(map[string]bool)
	for _, l := range factory.uow.languages.languages {
		slugs[l.Slug] = true
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Icon)
		assert.NotEmpty(t, l.Description)
		assert.NotEmpty(t, l.Purpose)
		assert.Len(t, l.Concepts, 3)
		assert.Len(t, l.Resources.Websites, 3)
		assert.Len(t, l.Resources.Videos, 2)
		assert.Len(t, l.Resources.Books, 2)
	}
	for _, slug := range []string{"python", "javascript", "java", "cpp", "dart", "rust"} {
		assert.True(t, slugs[slug], "missing seed language %s", slug)
	}
}
