package wellness

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFor(t *testing.T) {
	tests := []struct {
		name    string
		average float64
		want    State
	}{
		{name: "max", average: 5, want: StateThriving},
		{name: "thriving boundary", average: 4.2, want: StateThriving},
		{name: "just below thriving", average: 4.19999, want: StateOkay},
		{name: "okay boundary", average: 3.4, want: StateOkay},
		{name: "just below okay", average: 3.39999, want: StateSupport},
		{name: "support boundary", average: 2.6, want: StateSupport},
		{name: "just below support", average: 2.59999, want: StateUrgent},
		{name: "min", average: 1, want: StateUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateFor(tt.average))
		})
	}
}

func TestScore(t *testing.T) {
	t.Run("mixed low answers", func(t *testing.T) {
		avg, state, err := Score(Answers{StressLevel: 2, SleepQuality: 2, SupportLevel: 3, MoodStability: 3, FocusLevel: 2})
		require.NoError(t, err)
		assert.InDelta(t, 2.4, avg, 1e-9)
		assert.Equal(t, StateUrgent, state)
	})

	t.Run("exact thriving boundary from integers", func(t *testing.T) {
		avg, state, err := Score(Answers{StressLevel: 5, SleepQuality: 4, SupportLevel: 4, MoodStability: 4, FocusLevel: 4})
		require.NoError(t, err)
		assert.InDelta(t, 4.2, avg, 1e-9)
		assert.Equal(t, StateThriving, state)
	})

	t.Run("every combination lands in a known state", func(t *testing.T) {
		known := map[State]bool{StateThriving: true, StateOkay: true, StateSupport: true, StateUrgent: true}
		for a := 1; a <= 5; a++ {
			for b := 1; b <= 5; b++ {
				for c := 1; c <= 5; c++ {
					avg, state, err := Score(Answers{a, b, c, 3, 3})
					require.NoError(t, err)
					assert.GreaterOrEqual(t, avg, 1.0)
					assert.LessOrEqual(t, avg, 5.0)
					assert.True(t, known[state])
				}
			}
		}
	})

	t.Run("out of range reports first field", func(t *testing.T) {
		_, _, err := Score(Answers{StressLevel: 3, SleepQuality: 0, SupportLevel: 6, MoodStability: 3, FocusLevel: 3})
		var ratingErr *InvalidRatingError
		require.True(t, errors.As(err, &ratingErr))
		assert.Equal(t, "sleepQuality", ratingErr.Field)
	})
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "integer", raw: `3`, want: 3},
		{name: "lower bound", raw: `1`, want: 1},
		{name: "upper bound", raw: `5`, want: 5},
		{name: "integral float", raw: `4.0`, want: 4},
		{name: "numeric string", raw: `"2"`, wantErr: true},
		{name: "zero", raw: `0`, wantErr: true},
		{name: "six", raw: `6`, wantErr: true},
		{name: "negative", raw: `-1`, wantErr: true},
		{name: "fraction", raw: `2.5`, wantErr: true},
		{name: "text", raw: `"often"`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
		{name: "missing", raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRating("focusLevel", json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid score for focusLevel", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnswers(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(`{"stressLevel":1,"sleepQuality":2,"supportLevel":3,"moodStability":4,"focusLevel":5}`), &raw))

		answers, err := ParseAnswers(raw)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, answers.Values())
	})

	t.Run("first offending field in declared order", func(t *testing.T) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(`{"focusLevel":9,"moodStability":0,"stressLevel":3,"sleepQuality":2,"supportLevel":3}`), &raw))

		_, err := ParseAnswers(raw)
		require.Error(t, err)
		assert.Equal(t, "Invalid score for moodStability", err.Error())
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := ParseAnswers(map[string]json.RawMessage{})
		require.Error(t, err)
		assert.Equal(t, "Invalid score for stressLevel", err.Error())
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.4, Round2(2.4000000000000004))
	assert.Equal(t, 3.67, Round2(3.666666))
}
