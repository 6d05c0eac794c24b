package dto

type BookSessionRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Therapist   string `json:"therapist" validate:"required"`
	SessionType string `json:"sessionType" validate:"required"`
	SlotTime    string `json:"slotTime" validate:"required"`
	Notes       string `json:"notes"`
}

type BookSessionResponse struct {
	Success   bool   `json:"success"`
	BookingId uint   `json:"bookingId"`
	JoinLink  string `json:"joinLink"`
	Message   string `json:"message"`
}
