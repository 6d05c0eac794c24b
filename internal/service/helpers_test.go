package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/internal/pkg/mailer"
	"mindful-campus-be/internal/repository/unitofwork"
	"mindful-campus-be/pkg/database"
	"mindful-campus-be/pkg/llm"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenInMemory(name, model.All()...)
	require.NoError(t, err)
	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

type stubProvider struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
	last  []llm.Message
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.last = history
	return p.reply, p.err
}

func (p *stubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type recordingPublisher struct {
	mu       sync.Mutex
	bookings []*entity.SessionBooking
	err      error
}

func (p *recordingPublisher) PublishSessionBooked(ctx context.Context, booking *entity.SessionBooking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := *booking
	p.bookings = append(p.bookings, &copied)
	return p.err
}

type recordingMailer struct {
	mu      sync.Mutex
	enabled bool
	sent    []mailer.BookingConfirmation
	to      []string
}

func (m *recordingMailer) Enabled() bool { return m.enabled }

func (m *recordingMailer) SendBookingConfirmation(toEmail string, booking mailer.BookingConfirmation) error {
	if !m.enabled {
		return mailer.ErrMailDisabled
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = append(m.to, toEmail)
	m.sent = append(m.sent, booking)
	return nil
}

func (m *recordingMailer) Sent() []mailer.BookingConfirmation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.BookingConfirmation(nil), m.sent...)
}

func (m *recordingMailer) Recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.to...)
}
