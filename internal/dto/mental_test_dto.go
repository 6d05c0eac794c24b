package dto

import "github.com/goccy/go-json"

type MentalTestRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Email       string `json:"email"`
	// Answers is kept raw so each rating can be checked in a fixed order.
	Answers json.RawMessage `json:"answers"`
}

type MentalTestResponse struct {
	Success       bool    `json:"success"`
	AverageScore  float64 `json:"averageScore"`
	WellnessState string  `json:"wellnessState"`
	Guidance      string  `json:"guidance"`
}
