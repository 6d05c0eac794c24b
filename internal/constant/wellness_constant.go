package constant

const (
	BookingSuccessMessage       = "Session booked. Keep this join link for your call."
	BookingMissingFieldsMessage = "Please fill in all required booking fields."
	BookingJoinTokenLength      = 12

	MentalTestMissingMessage = "Name and answers are required."
	MentalTestGuidance       = "Thank you for checking in. Your feelings are valid. Consider connecting with a therapist today for personalized support."

	ChatMissingMessage   = "Message is required."
	ChatThrottledMessage = "You are sending messages too quickly. Please take a breath and try again in a minute."

	HistoryLimit = 10

	MaxBodyBytes = 1_000_000

	SessionBookedEvent = "SESSION_BOOKED"
)

type Therapist struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
}

type Helpline struct {
	Country string `json:"country"`
	Number  string `json:"number"`
}

var DailyNotes = []string{
	"You are not a burden. You are a human being deserving of rest, support, and care.",
	"Small steps count. Drinking water, breathing slowly, and showing up today is progress.",
	"Asking for help is courage in motion. You do not have to carry everything alone.",
	"Your story is still unfolding. Today can be gentle and enough.",
	"You matter deeply, even on the days your mind tries to convince you otherwise.",
}

var Quotes = []string{
	"Breathe in calm, breathe out heaviness.",
	"This moment is hard, but you are still here—and that is brave.",
	"You are allowed to pause. Healing is not a race.",
	"Clouds pass. Thoughts pass. You can stay with your breath.",
	"You are worthy of help, kindness, and one more sunrise.",
}

var Therapists = []Therapist{
	{Name: "Dr. Aisha Rahman", Specialization: "Student anxiety & panic support", Availability: "24/7 emergency + regular slots"},
	{Name: "Dr. Ethan Miles", Specialization: "Depression and stress recovery", Availability: "09:00 - 22:00"},
	{Name: "Dr. Kavya Menon", Specialization: "Crisis counseling and trauma-informed care", Availability: "24/7 emergency rotation"},
}

var Helplines = []Helpline{
	{Country: "India", Number: "1800-599-0019 (Kiran 24/7)"},
	{Country: "USA & Canada", Number: "988 (Suicide & Crisis Lifeline 24/7)"},
	{Country: "UK & ROI", Number: "116 123 (Samaritans 24/7)"},
	{Country: "Emergency", Number: "Call local emergency services immediately"},
}
