package dto

// HistoryTimeLayout matches the sqlite CURRENT_TIMESTAMP text format.
const HistoryTimeLayout = "2006-01-02 15:04:05"

type BookingHistoryItem struct {
	Id          uint   `json:"id"`
	StudentName string `json:"student_name"`
	Email       string `json:"email"`
	Therapist   string `json:"therapist"`
	SessionType string `json:"session_type"`
	SlotTime    string `json:"slot_time"`
	JoinLink    string `json:"join_link"`
	CreatedAt   string `json:"created_at"`
}

type TestHistoryItem struct {
	Id            uint    `json:"id"`
	StudentName   string  `json:"student_name"`
	Email         string  `json:"email"`
	AverageScore  float64 `json:"average_score"`
	WellnessState string  `json:"wellness_state"`
	CreatedAt     string  `json:"created_at"`
}

type HistoryResponse struct {
	Bookings []BookingHistoryItem `json:"bookings"`
	Tests    []TestHistoryItem    `json:"tests"`
}
