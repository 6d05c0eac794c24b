package implementation

import (
	"context"
	"errors"

	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/mapper"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/internal/repository/contract"
	"mindful-campus-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionBookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewSessionBookingRepository(db *gorm.DB) contract.SessionBookingRepository {
	return &SessionBookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *SessionBookingRepositoryImpl) Create(ctx context.Context, booking *entity.SessionBooking) error {
	m := r.mapper.SessionBookingToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.SessionBookingToEntity(m)
	return nil
}

func (r *SessionBookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionBooking, error) {
	var m model.SessionBooking
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionBookingToEntity(&m), nil
}

func (r *SessionBookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionBooking, error) {
	var models []*model.SessionBooking
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SessionBooking, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionBookingToEntity(m)
	}
	return entities, nil
}

func (r *SessionBookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.SessionBooking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
