package entity

import "time"

type SessionBooking struct {
	Id          uint
	StudentName string
	Email       string
	Therapist   string
	SessionType string
	SlotTime    string
	Notes       string
	JoinLink    string
	CreatedAt   time.Time
}
