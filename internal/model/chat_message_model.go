package model

import "time"

type ChatMessage struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Role      string    `gorm:"type:text;not null"` // user | assistant
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chatbot_messages"
}
