package service

import (
	"context"
	"fmt"
	"time"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/entity"
	"mindful-campus-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

type IPublisherService interface {
	PublishSessionBooked(ctx context.Context, booking *entity.SessionBooking) error
}

type publisherService struct {
	publisher message.Publisher
	topicName string
}

func NewPublisherService(publisher message.Publisher, topicName string) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
	}
}

func (ps *publisherService) PublishSessionBooked(ctx context.Context, booking *entity.SessionBooking) error {
	bookedAt := booking.CreatedAt
	if bookedAt.IsZero() {
		bookedAt = time.Now()
	}

	evt := events.BaseEvent{
		Type: constant.SessionBookedEvent,
		Data: dto.SessionBookedMessage{
			BookingId:   booking.Id,
			StudentName: booking.StudentName,
			Email:       booking.Email,
			Therapist:   booking.Therapist,
			SessionType: booking.SessionType,
			SlotTime:    booking.SlotTime,
			JoinLink:    booking.JoinLink,
			BookedAt:    bookedAt,
		},
		OccurredAt: bookedAt,
	}

	return ps.publish(ctx, evt)
}

func (ps *publisherService) publish(ctx context.Context, evt events.Event) error {
	payload, err := json.Marshal(evt.Payload())
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set(events.MetadataType, evt.EventType())

	if err := ps.publisher.Publish(ps.topicName, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", evt.EventType(), err)
	}
	return nil
}
