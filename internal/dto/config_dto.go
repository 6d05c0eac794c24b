package dto

import "mindful-campus-be/internal/constant"

type ConfigResponse struct {
	DailyNote  string               `json:"dailyNote"`
	Quote      string               `json:"quote"`
	Therapists []constant.Therapist `json:"therapists"`
	Helplines  []constant.Helpline  `json:"helplines"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
