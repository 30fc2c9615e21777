package contract

import (
	"context"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/repository/specification"
)

type LanguageRepository interface {
	// CreateBatch inserts the full reference set; returns ErrDuplicate when a
	// concurrent seeder already inserted a slug.
	CreateBatch(ctx context.Context, languages []*entity.Language) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Language, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Language, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
