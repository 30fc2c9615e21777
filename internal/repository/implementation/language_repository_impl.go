package implementation

import (
	"context"
	"errors"

	"codekickstart-be/internal/entity"
	"codekickstart-be/internal/mapper"
	"codekickstart-be/internal/model"
	"codekickstart-be/internal/repository/contract"
	"codekickstart-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LanguageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LanguageMapper
}

func NewLanguageRepository(db *gorm.DB) contract.LanguageRepository {
	return &LanguageRepositoryImpl{
		db:     db,
		mapper: mapper.NewLanguageMapper(),
	}
}

func (r *LanguageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LanguageRepositoryImpl) CreateBatch(ctx context.Context, languages []*entity.Language) error {
	models := make([]*model.Language, len(languages))
	for i, l := range languages {
		models[i] = r.mapper.ToModel(l)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		if isUniqueViolation(err) {
			return contract.ErrDuplicate
		}
		return err
	}
	for i, m := range models {
		*languages[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LanguageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Language, error) {
	var m model.Language
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LanguageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Language, error) {
	var models []*model.Language
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Language, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LanguageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Language{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
