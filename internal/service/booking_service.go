package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/repository/unitofwork"
)

type IBookingService interface {
	Book(ctx context.Context, req *dto.BookSessionRequest) (*dto.BookSessionResponse, error)
	JoinLink(studentName string, at time.Time) string
}

type bookingService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    IPublisherService
	joinLinkBase string
	now          func() time.Time
	logger       logger.ILogger
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	joinLinkBase string,
	now func() time.Time,
	logger logger.ILogger,
) IBookingService {
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		joinLinkBase: strings.TrimRight(joinLinkBase, "/"),
		now:          now,
		logger:       logger,
	}
}

// JoinLink encodes "<name>-<unix millis>" as unpadded base64url and keeps
// the first 12 characters. Long names make the token depend on the name
// alone; collisions are accepted.
func (s *bookingService) JoinLink(studentName string, at time.Time) string {
	raw := fmt.Sprintf("%s-%d", studentName, at.UnixMilli())
	token := base64.RawURLEncoding.EncodeToString([]byte(raw))
	if len(token) > constant.BookingJoinTokenLength {
		token = token[:constant.BookingJoinTokenLength]
	}
	return s.joinLinkBase + "/" + token
}

func (s *bookingService) Book(ctx context.Context, req *dto.BookSessionRequest) (*dto.BookSessionResponse, error) {
	if err := serverutils.ValidateRequest(req, constant.BookingMissingFieldsMessage); err != nil {
		return nil, err
	}

	booking := &entity.SessionBooking{
		StudentName: req.StudentName,
		Email:       req.Email,
		Therapist:   req.Therapist,
		SessionType: req.SessionType,
		SlotTime:    req.SlotTime,
		Notes:       req.Notes,
		JoinLink:    s.JoinLink(req.StudentName, s.now()),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, s.persistenceFailure("begin booking transaction", err)
	}
	defer uow.Rollback()

	// Create fills booking.Id from the insert itself
	if err := uow.SessionBookingRepository().Create(ctx, booking); err != nil {
		return nil, s.persistenceFailure("insert session booking", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, s.persistenceFailure("commit session booking", err)
	}

	s.logger.Info("BOOKING", "Session booked", map[string]interface{}{
		"booking_id": booking.Id,
		"therapist":  booking.Therapist,
	})

	if s.publisher != nil {
		if err := s.publisher.PublishSessionBooked(ctx, booking); err != nil {
			s.logger.Warn("BOOKING", "Failed to publish booking event", map[string]interface{}{
				"booking_id": booking.Id,
				"error":      err,
			})
		}
	}

	return &dto.BookSessionResponse{
		Success:   true,
		BookingId: booking.Id,
		JoinLink:  booking.JoinLink,
		Message:   constant.BookingSuccessMessage,
	}, nil
}

func (s *bookingService) persistenceFailure(op string, err error) error {
	s.logger.Error("BOOKING", "Persistence failure", map[string]interface{}{"op": op, "error": err})
	return serverutils.NewPersistenceError(op, err)
}
