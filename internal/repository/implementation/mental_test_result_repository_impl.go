package implementation

import (
	"context"

	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/mapper"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/internal/repository/contract"
	"mindful-campus-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MentalTestResultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewMentalTestResultRepository(db *gorm.DB) contract.MentalTestResultRepository {
	return &MentalTestResultRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *MentalTestResultRepositoryImpl) Create(ctx context.Context, result *entity.MentalTestResult) error {
	m := r.mapper.MentalTestResultToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.MentalTestResultToEntity(m)
	return nil
}

func (r *MentalTestResultRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MentalTestResult, error) {
	var models []*model.MentalTestResult
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MentalTestResult, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MentalTestResultToEntity(m)
	}
	return entities, nil
}

func (r *MentalTestResultRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.MentalTestResult{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
