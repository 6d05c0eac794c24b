package dto

import "time"

// SessionBookedMessage is the payload published after a booking commits.
type SessionBookedMessage struct {
	BookingId   uint      `json:"booking_id"`
	StudentName string    `json:"student_name"`
	Email       string    `json:"email"`
	Therapist   string    `json:"therapist"`
	SessionType string    `json:"session_type"`
	SlotTime    string    `json:"slot_time"`
	JoinLink    string    `json:"join_link"`
	BookedAt    time.Time `json:"booked_at"`
}
