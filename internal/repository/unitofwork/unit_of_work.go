package unitofwork

import (
	"context"

	"codekickstart-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	LanguageRepository() contract.LanguageRepository
	BookmarkRepository() contract.BookmarkRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
