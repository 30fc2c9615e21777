package contract

import (
	"context"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	// Create returns ErrDuplicate when the (user, slug) pair already exists.
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
