package contract

import (
	"context"

	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/repository/specification"
)

type MentalTestResultRepository interface {
	Create(ctx context.Context, result *entity.MentalTestResult) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MentalTestResult, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
