package unitofwork

import (
	"context"

	"mindful-campus-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionBookingRepository() contract.SessionBookingRepository
	MentalTestResultRepository() contract.MentalTestResultRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
