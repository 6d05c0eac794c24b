package mapper

import (
	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/pkg/wellness"
)

type WellnessMapper struct{}

func NewWellnessMapper() *WellnessMapper {
	return &WellnessMapper{}
}

// Booking Mappers

func (m *WellnessMapper) SessionBookingToEntity(b *model.SessionBooking) *entity.SessionBooking {
	if b == nil {
		return nil
	}
	return &entity.SessionBooking{
		Id:          b.Id,
		StudentName: b.StudentName,
		Email:       b.Email,
		Therapist:   b.Therapist,
		SessionType: b.SessionType,
		SlotTime:    b.SlotTime,
		Notes:       b.Notes,
		JoinLink:    b.JoinLink,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *WellnessMapper) SessionBookingToModel(b *entity.SessionBooking) *model.SessionBooking {
	if b == nil {
		return nil
	}
	return &model.SessionBooking{
		Id:          b.Id,
		StudentName: b.StudentName,
		Email:       b.Email,
		Therapist:   b.Therapist,
		SessionType: b.SessionType,
		SlotTime:    b.SlotTime,
		Notes:       b.Notes,
		JoinLink:    b.JoinLink,
		CreatedAt:   b.CreatedAt,
	}
}

// Test Result Mappers

func (m *WellnessMapper) MentalTestResultToEntity(r *model.MentalTestResult) *entity.MentalTestResult {
	if r == nil {
		return nil
	}
	return &entity.MentalTestResult{
		Id:          r.Id,
		StudentName: r.StudentName,
		Email:       r.Email,
		Answers: wellness.Answers{
			StressLevel:   r.StressLevel,
			SleepQuality:  r.SleepQuality,
			SupportLevel:  r.SupportLevel,
			MoodStability: r.MoodStability,
			FocusLevel:    r.FocusLevel,
		},
		AverageScore:  r.AverageScore,
		WellnessState: wellness.State(r.WellnessState),
		CreatedAt:     r.CreatedAt,
	}
}

func (m *WellnessMapper) MentalTestResultToModel(r *entity.MentalTestResult) *model.MentalTestResult {
	if r == nil {
		return nil
	}
	return &model.MentalTestResult{
		Id:            r.Id,
		StudentName:   r.StudentName,
		Email:         r.Email,
		StressLevel:   r.Answers.StressLevel,
		SleepQuality:  r.Answers.SleepQuality,
		SupportLevel:  r.Answers.SupportLevel,
		MoodStability: r.Answers.MoodStability,
		FocusLevel:    r.Answers.FocusLevel,
		AverageScore:  r.AverageScore,
		WellnessState: string(r.WellnessState),
		CreatedAt:     r.CreatedAt,
	}
}

// Chat Mappers

func (m *WellnessMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        msg.Id,
		Role:      entity.ChatRole(msg.Role),
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *WellnessMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        msg.Id,
		Role:      string(msg.Role),
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}
