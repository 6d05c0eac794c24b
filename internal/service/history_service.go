package service

import (
	"context"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/repository/specification"
	"mindful-campus-be/internal/repository/unitofwork"
)

type IHistoryService interface {
	Recent(ctx context.Context) (*dto.HistoryResponse, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Recent returns the newest bookings and test results, read in one
// transaction so both lists come from the same snapshot.
func (s *historyService) Recent(ctx context.Context) (*dto.HistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, s.readFailure("begin history read", err)
	}
	defer uow.Rollback()

	newest := specification.Newest{Limit: constant.HistoryLimit}

	bookings, err := uow.SessionBookingRepository().FindAll(ctx, newest)
	if err != nil {
		return nil, s.readFailure("list session bookings", err)
	}
	tests, err := uow.MentalTestResultRepository().FindAll(ctx, newest)
	if err != nil {
		return nil, s.readFailure("list mental test results", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, s.readFailure("commit history read", err)
	}

	res := &dto.HistoryResponse{
		Bookings: make([]dto.BookingHistoryItem, 0, len(bookings)),
		Tests:    make([]dto.TestHistoryItem, 0, len(tests)),
	}
	for _, b := range bookings {
		res.Bookings = append(res.Bookings, dto.BookingHistoryItem{
			Id:          b.Id,
			StudentName: b.StudentName,
			Email:       b.Email,
			Therapist:   b.Therapist,
			SessionType: b.SessionType,
			SlotTime:    b.SlotTime,
			JoinLink:    b.JoinLink,
			CreatedAt:   b.CreatedAt.UTC().Format(dto.HistoryTimeLayout),
		})
	}
	for _, t := range tests {
		res.Tests = append(res.Tests, dto.TestHistoryItem{
			Id:            t.Id,
			StudentName:   t.StudentName,
			Email:         t.Email,
			AverageScore:  t.AverageScore,
			WellnessState: string(t.WellnessState),
			CreatedAt:     t.CreatedAt.UTC().Format(dto.HistoryTimeLayout),
		})
	}

	return res, nil
}

func (s *historyService) readFailure(op string, err error) error {
	s.logger.Error("HISTORY", "Failed to read history", map[string]interface{}{"op": op, "error": err})
	return serverutils.NewPersistenceError(op, err)
}
