package service

import (
	"math/rand/v2"
	"time"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
)

const secondsPerDay = 86400

type IContentService interface {
	DailyNote() string
	RandomQuote() string
	Therapists() []constant.Therapist
	Helplines() []constant.Helpline
	Bundle() *dto.ConfigResponse
}

type contentService struct {
	now  func() time.Time
	intn func(n int) int
}

// NewContentService takes the clock and random source so tests can pin
// them. Nil values fall back to time.Now and rand.IntN.
func NewContentService(now func() time.Time, intn func(n int) int) IContentService {
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.IntN
	}
	return &contentService{now: now, intn: intn}
}

// DailyNote rotates once per UTC day: epoch seconds / 86400 mod list length.
func (s *contentService) DailyNote() string {
	day := s.now().Unix() / secondsPerDay
	n := int64(len(constant.DailyNotes))
	idx := day % n
	if idx < 0 {
		idx += n
	}
	return constant.DailyNotes[idx]
}

func (s *contentService) RandomQuote() string {
	return constant.Quotes[s.intn(len(constant.Quotes))]
}

func (s *contentService) Therapists() []constant.Therapist {
	out := make([]constant.Therapist, len(constant.Therapists))
	copy(out, constant.Therapists)
	return out
}

func (s *contentService) Helplines() []constant.Helpline {
	out := make([]constant.Helpline, len(constant.Helplines))
	copy(out, constant.Helplines)
	return out
}

func (s *contentService) Bundle() *dto.ConfigResponse {
	return &dto.ConfigResponse{
		DailyNote:  s.DailyNote(),
		Quote:      s.RandomQuote(),
		Therapists: s.Therapists(),
		Helplines:  s.Helplines(),
	}
}
