package entity

import (
	"time"

	"mindful-campus-be/pkg/wellness"
)

type MentalTestResult struct {
	Id            uint
	StudentName   string
	Email         string
	Answers       wellness.Answers
	AverageScore  float64
	WellnessState wellness.State
	CreatedAt     time.Time
}
