package service

import (
	"context"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/contract"
	"codekickstart-be/internal/repository/specification"
	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the same specifications the GORM
// implementations translate to SQL, so services exercise identical query paths.

func specsMatchLanguage(l *entity.Language, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.BySlug:
			if l.Slug != sp.Slug {
				return false
			}
		case specification.ByID:
			if l.Id != sp.ID {
				return false
			}
		}
	}
	return true
}

type fakeLanguageRepo struct {
	languages []*entity.Language
	createErr error
}

func (r *fakeLanguageRepo) CreateBatch(_ context.Context, languages []*entity.Language) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.languages = append(r.languages, languages...)
	return nil
}

func (r *fakeLanguageRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Language, error) {
	for _, l := range r.languages {
		if specsMatchLanguage(l, specs) {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLanguageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Language, error) {
	var out []*entity.Language
	for _, l := range r.languages {
		if specsMatchLanguage(l, specs) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLanguageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func specsMatchBookmark(b *entity.Bookmark, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByUserId:
			if b.UserId != sp.UserId {
				return false
			}
		case specification.ByLanguageSlug:
			if b.LanguageSlug != sp.Slug {
				return false
			}
		}
	}
	return true
}

type fakeBookmarkRepo struct {
	bookmarks []*entity.Bookmark
	createErr error
}

func (r *fakeBookmarkRepo) Create(_ context.Context, bookmark *entity.Bookmark) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, b := range r.bookmarks {
		if b.UserId == bookmark.UserId && b.LanguageSlug == bookmark.LanguageSlug {
			return contract.ErrDuplicate
		}
	}
	r.bookmarks = append(r.bookmarks, bookmark)
	return nil
}

func (r *fakeBookmarkRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.bookmarks[:0]
	for _, b := range r.bookmarks {
		if b.Id != id {
			kept = append(kept, b)
		}
	}
	r.bookmarks = kept
	return nil
}

func (r *fakeBookmarkRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	for _, b := range r.bookmarks {
		if specsMatchBookmark(b, specs) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookmarkRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var out []*entity.Bookmark
	for _, b := range r.bookmarks {
		if specsMatchBookmark(b, specs) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func specsMatchChatMessage(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByUserId:
			if m.UserId != sp.UserId {
				return false
			}
		}
	}
	return true
}

type fakeChatMessageRepo struct {
	messages  []*entity.ChatMessage
	createErr error
}

func (r *fakeChatMessageRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if specsMatchChatMessage(m, specs) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatMessageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func specsMatchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		}
	}
	return true
}

type fakeUserRepo struct {
	users         []*entity.User
	otpTokens     []*entity.EmailVerificationToken
	refreshTokens []*entity.UserRefreshToken
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return contract.ErrDuplicate
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if specsMatchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ActivateUser(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.Id == id {
			u.Status = entity.UserStatusActive
			u.EmailVerified = true
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(_ context.Context, token *entity.EmailVerificationToken) error {
	r.otpTokens = append(r.otpTokens, token)
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(_ context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	for _, t := range r.otpTokens {
		matched := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByUserId:
				if t.UserId != sp.UserId {
					matched = false
				}
			case specification.ByToken:
				if t.Token != sp.Token {
					matched = false
				}
			}
		}
		if matched {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(_ context.Context, id uuid.UUID) error {
	kept := r.otpTokens[:0]
	for _, t := range r.otpTokens {
		if t.Id != id {
			kept = append(kept, t)
		}
	}
	r.otpTokens = kept
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(_ context.Context, token *entity.UserRefreshToken) error {
	r.refreshTokens = append(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) RevokeRefreshToken(_ context.Context, tokenHash string) error {
	for _, t := range r.refreshTokens {
		if t.TokenHash == tokenHash {
			t.Revoked = true
		}
	}
	return nil
}

type fakeUnitOfWork struct {
	users     *fakeUserRepo
	languages *fakeLanguageRepo
	bookmarks *fakeBookmarkRepo
	chats     *fakeChatMessageRepo

	began      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { u.began++; return nil }
func (u *fakeUnitOfWork) Commit() error                 { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error               { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) LanguageRepository() contract.LanguageRepository {
	return u.languages
}
func (u *fakeUnitOfWork) BookmarkRepository() contract.BookmarkRepository {
	return u.bookmarks
}
func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.chats
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			users:     &fakeUserRepo{},
			languages: &fakeLanguageRepo{},
			bookmarks: &fakeBookmarkRepo{},
			chats:     &fakeChatMessageRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeLLMProvider struct {
	reply string
	err   error

	calls       int
	lastHistory []llm.Message
	lastOpts    llm.Options
}

func (p *fakeLLMProvider) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	p.lastHistory = history
	opts := llm.Options{}
	for _, o := range options {
		o(&opts)
	}
	p.lastOpts = opts
	return p.reply, p.err
}

func (p *fakeLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
