package service

import (
	"context"
	"errors"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/mailer"
	"mindful-campus-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		emailService: emailService,
		logger:       logger,
	}
}

// Consume subscribes to the booking topic and handles messages in the
// background until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always acks: a failed confirmation mail is logged, not retried.
func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	if eventType := msg.Metadata.Get(events.MetadataType); eventType != constant.SessionBookedEvent {
		cs.logger.Debug("EVENTS", "Skipping unknown event", map[string]interface{}{"event_type": eventType})
		return
	}

	var payload dto.SessionBookedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("EVENTS", "Failed to unmarshal booking event", map[string]interface{}{"error": err})
		return
	}

	err := cs.emailService.SendBookingConfirmation(payload.Email, mailer.BookingConfirmation{
		StudentName: payload.StudentName,
		Therapist:   payload.Therapist,
		SessionType: payload.SessionType,
		SlotTime:    payload.SlotTime,
		JoinLink:    payload.JoinLink,
	})
	switch {
	case errors.Is(err, mailer.ErrMailDisabled):
		cs.logger.Info("EVENTS", "Mail disabled, skipping booking confirmation", map[string]interface{}{"booking_id": payload.BookingId})
	case err != nil:
		cs.logger.Warn("EVENTS", "Booking confirmation not sent", map[string]interface{}{"booking_id": payload.BookingId, "error": err})
	default:
		cs.logger.Info("EVENTS", "Booking confirmation sent", map[string]interface{}{"booking_id": payload.BookingId})
	}
}
