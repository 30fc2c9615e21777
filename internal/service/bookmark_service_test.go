package service

import (
	"context"
	"testing"
	"time"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/pkg/auth"
	"codekickstart-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBookmarkServiceForTest() (IBookmarkService, *fakeUowFactory) {
	factory := newFakeUowFactory()
	factory.uow.languages.languages = []*entity.Language{
		{Id: uuid.New(), Slug: "python", Name: "Python"},
		{Id: uuid.New(), Slug: "rust", Name: "Rust"},
	}
	return NewBookmarkService(factory), factory
}

func TestToggleBookmark_AddThenRemove(t *testing.T) {
	svc, factory := newBookmarkServiceForTest()
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.ToggleBookmark(ctx, userId, "python")
	assert.NoError(t, err)
	assert.True(t, res.Bookmarked)
	assert.Len(t, factory.uow.bookmarks.bookmarks, 1)

	res, err = svc.ToggleBookmark(ctx, userId, "python")
	assert.NoError(t, err)
	assert.False(t, res.Bookmarked)
	assert.Empty(t, factory.uow.bookmarks.bookmarks)
}

func TestToggleBookmark_UnknownLanguage(t *testing.T) {
	svc, _ := newBookmarkServiceForTest()

	_, err := svc.ToggleBookmark(context.Background(), uuid.New(), "cobol")
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestToggleBookmark_LosingInsertRaceReportsBookmarked(t *testing.T) {
	svc, factory := newBookmarkServiceForTest()
	factory.uow.bookmarks.createErr = contract.ErrDuplicate

	res, err := svc.ToggleBookmark(context.Background(), uuid.New(), "python")
	assert.NoError(t, err)
	assert.True(t, res.Bookmarked)
}

func TestGetBookmarkStatus_AnonymousIsNeverBookmarked(t *testing.T) {
	svc, _ := newBookmarkServiceForTest()

	res, err := svc.GetBookmarkStatus(context.Background(), auth.Anonymous(), "python")
	assert.NoError(t, err)
	assert.False(t, res.Bookmarked)
	assert.Equal(t, "python", res.LanguageSlug)
}

func TestGetBookmarkStatus_Authenticated(t *testing.T) {
	svc, factory := newBookmarkServiceForTest()
	userId := uuid.New()
	factory.uow.bookmarks.bookmarks = []*entity.Bookmark{
		{Id: uuid.New(), UserId: userId, LanguageSlug: "python", CreatedAt: time.Now()},
	}

	res, err := svc.GetBookmarkStatus(context.Background(), auth.Authenticated(userId), "python")
	assert.NoError(t, err)
	assert.True(t, res.Bookmarked)

	res, err = svc.GetBookmarkStatus(context.Background(), auth.Authenticated(userId), "rust")
	assert.NoError(t, err)
	assert.False(t, res.Bookmarked)
}

func TestGetBookmarks_ScopedToUser(t *testing.T) {
	svc, factory := newBookmarkServiceForTest()
	userId := uuid.New()
	otherId := uuid.New()
	factory.uow.bookmarks.bookmarks = []*entity.Bookmark{
		{Id: uuid.New(), UserId: userId, LanguageSlug: "python"},
		{Id: uuid.New(), UserId: userId, LanguageSlug: "rust"},
		{Id: uuid.New(), UserId: otherId, LanguageSlug: "python"},
	}

	res, err := svc.GetBookmarks(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
