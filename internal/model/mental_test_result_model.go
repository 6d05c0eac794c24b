package model

import "time"

type MentalTestResult struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	StudentName   string    `gorm:"type:text;not null"`
	Email         string    `gorm:"type:text;not null;default:''"`
	StressLevel   int       `gorm:"not null"`
	SleepQuality  int       `gorm:"not null"`
	SupportLevel  int       `gorm:"not null"`
	MoodStability int       `gorm:"not null"`
	FocusLevel    int       `gorm:"not null"`
	AverageScore  float64   `gorm:"not null"`
	WellnessState string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (MentalTestResult) TableName() string {
	return "mental_test_results"
}
