package contract

import (
	"context"

	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/repository/specification"
)

type SessionBookingRepository interface {
	// Create fills booking.Id and booking.CreatedAt from the inserted row.
	Create(ctx context.Context, booking *entity.SessionBooking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionBooking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionBooking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
