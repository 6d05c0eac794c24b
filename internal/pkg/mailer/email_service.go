package mailer

import (
	"errors"
	"fmt"
	"html"

	"mindful-campus-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// ErrMailDisabled is returned when no SMTP host is configured.
var ErrMailDisabled = errors.New("mail delivery is disabled")

type BookingConfirmation struct {
	StudentName string
	Therapist   string
	SessionType string
	SlotTime    string
	JoinLink    string
}

type IEmailService interface {
	SendBookingConfirmation(toEmail string, booking BookingConfirmation) error
	Enabled() bool
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	var d *gomail.Dialer
	if host != "" {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) Enabled() bool {
	return s.dialer != nil
}

func (s *emailService) SendBookingConfirmation(toEmail string, booking BookingConfirmation) error {
	if !s.Enabled() {
		return ErrMailDisabled
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your session is booked")
	m.SetBody("text/html", BookingConfirmationBody(booking))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send booking confirmation", map[string]interface{}{
			"to":    toEmail,
			"error": err,
		})
		return err
	}

	s.logger.Info("MAILER", "Booking confirmation sent", map[string]interface{}{"to": toEmail})
	return nil
}

// BookingConfirmationBody renders the HTML body. Every value is escaped.
func BookingConfirmationBody(b BookingConfirmation) string {
	link := html.EscapeString(b.JoinLink)
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your session is booked</h2>
			<p><strong>Therapist:</strong> %s</p>
			<p><strong>Session:</strong> %s</p>
			<p><strong>Time:</strong> %s</p>
			<p>Join your call here:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Join session</a>
			<p>%s</p>
			<p>If you are in immediate danger, please call a 24/7 helpline or local emergency services now.</p>
		</div>
	`,
		html.EscapeString(b.StudentName),
		html.EscapeString(b.Therapist),
		html.EscapeString(b.SessionType),
		html.EscapeString(b.SlotTime),
		link,
		link,
	)
}
