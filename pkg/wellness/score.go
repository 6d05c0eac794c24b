// Package wellness scores the five-question self-assessment.
package wellness

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

type State string

const (
	StateThriving State = "Thriving and stable"
	StateOkay     State = "Doing okay with manageable stress"
	StateSupport  State = "Needs gentle support and recharge"
	StateUrgent   State = "Needs urgent support and human connection"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Fields is the order in which ratings are validated and reported.
var Fields = []string{"stressLevel", "sleepQuality", "supportLevel", "moodStability", "focusLevel"}

type Answers struct {
	StressLevel   int `json:"stressLevel"`
	SleepQuality  int `json:"sleepQuality"`
	SupportLevel  int `json:"supportLevel"`
	MoodStability int `json:"moodStability"`
	FocusLevel    int `json:"focusLevel"`
}

// Values returns the ratings in Fields order.
func (a Answers) Values() []int {
	return []int{a.StressLevel, a.SleepQuality, a.SupportLevel, a.MoodStability, a.FocusLevel}
}

// InvalidRatingError names the first rating that failed validation.
type InvalidRatingError struct {
	Field string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("Invalid score for %s", e.Field)
}

// ParseRating converts one raw JSON rating into an integer in [1,5].
// Only JSON numbers are accepted; strings, null, missing values and
// fractions are rejected.
func ParseRating(field string, raw json.RawMessage) (int, error) {
	invalid := &InvalidRatingError{Field: field}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return 0, invalid
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, invalid
	}
	if v != math.Trunc(v) || v < MinRating || v > MaxRating {
		return 0, invalid
	}
	return int(v), nil
}

// ParseAnswers validates the raw answers object field by field in Fields order.
func ParseAnswers(raw map[string]json.RawMessage) (Answers, error) {
	var parsed [5]int
	for i, field := range Fields {
		v, err := ParseRating(field, raw[field])
		if err != nil {
			return Answers{}, err
		}
		parsed[i] = v
	}
	return Answers{
		StressLevel:   parsed[0],
		SleepQuality:  parsed[1],
		SupportLevel:  parsed[2],
		MoodStability: parsed[3],
		FocusLevel:    parsed[4],
	}, nil
}

// Score returns the mean of the five ratings and its wellness state.
func Score(a Answers) (float64, State, error) {
	values := a.Values()
	sum := 0
	for i, v := range values {
		if v < MinRating || v > MaxRating {
			return 0, "", &InvalidRatingError{Field: Fields[i]}
		}
		sum += v
	}
	average := float64(sum) / float64(len(values))
	return average, StateFor(average), nil
}

// StateFor maps an average score onto the four fixed states, high to low.
func StateFor(average float64) State {
	switch {
	case average >= 4.2:
		return StateThriving
	case average >= 3.4:
		return StateOkay
	case average >= 2.6:
		return StateSupport
	default:
		return StateUrgent
	}
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
