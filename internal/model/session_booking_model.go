package model

import "time"

type SessionBooking struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	StudentName string    `gorm:"type:text;not null"`
	Email       string    `gorm:"type:text;not null"`
	Therapist   string    `gorm:"type:text;not null"`
	SessionType string    `gorm:"type:text;not null"`
	SlotTime    string    `gorm:"type:text;not null"`
	Notes       string    `gorm:"type:text;not null;default:''"`
	JoinLink    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (SessionBooking) TableName() string {
	return "session_bookings"
}
