package service

import (
	"context"
	"errors"
	"testing"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/repository/specification"
	"mindful-campus-be/pkg/wellness"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("low answers need urgent support", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAssessmentService(factory, logger.NewNopLogger())

		res, err := svc.Submit(ctx, &dto.MentalTestRequest{
			StudentName: "Ana",
			Answers:     json.RawMessage(`{"stressLevel":2,"sleepQuality":2,"supportLevel":3,"moodStability":3,"focusLevel":2}`),
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 2.4, res.AverageScore)
		assert.Equal(t, string(wellness.StateUrgent), res.WellnessState)
		assert.Equal(t, constant.MentalTestGuidance, res.Guidance)

		stored, err := factory.NewUnitOfWork(ctx).MentalTestResultRepository().FindAll(ctx, specification.Newest{Limit: 1})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Ana", stored[0].StudentName)
		assert.Equal(t, "", stored[0].Email)
		assert.Equal(t, 2, stored[0].Answers.FocusLevel)
		assert.Equal(t, wellness.StateUrgent, stored[0].WellnessState)
	})

	t.Run("response rounds, storage keeps the mean", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAssessmentService(factory, logger.NewNopLogger())

		res, err := svc.Submit(ctx, &dto.MentalTestRequest{
			StudentName: "Ben",
			Email:       "ben@example.com",
			Answers:     json.RawMessage(`{"stressLevel":5,"sleepQuality":4,"supportLevel":4,"moodStability":4,"focusLevel":4}`),
		})
		require.NoError(t, err)
		assert.Equal(t, 4.2, res.AverageScore)
		assert.Equal(t, string(wellness.StateThriving), res.WellnessState)

		stored, err := factory.NewUnitOfWork(ctx).MentalTestResultRepository().FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.InDelta(t, 4.2, stored[0].AverageScore, 1e-9)
		assert.Equal(t, "ben@example.com", stored[0].Email)
	})

	tests := []struct {
		name    string
		req     dto.MentalTestRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     dto.MentalTestRequest{Answers: json.RawMessage(`{"stressLevel":3}`)},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "missing answers",
			req:     dto.MentalTestRequest{StudentName: "Ana"},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "null answers",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`null`)},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "zero answers",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`0`)},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "fractional zero answers",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`0.0`)},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "negative zero answers",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`-0`)},
			wantMsg: constant.MentalTestMissingMessage,
		},
		{
			name:    "string zero answers are truthy",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`"0"`)},
			wantMsg: "Invalid score for stressLevel",
		},
		{
			name:    "zero rating",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`{"stressLevel":3,"sleepQuality":0,"supportLevel":3,"moodStability":3,"focusLevel":3}`)},
			wantMsg: "Invalid score for sleepQuality",
		},
		{
			name:    "six rating",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`{"stressLevel":3,"sleepQuality":3,"supportLevel":3,"moodStability":3,"focusLevel":6}`)},
			wantMsg: "Invalid score for focusLevel",
		},
		{
			name:    "fraction reports first bad field",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`{"stressLevel":3,"sleepQuality":3,"supportLevel":2.5,"moodStability":0,"focusLevel":3}`)},
			wantMsg: "Invalid score for supportLevel",
		},
		{
			name:    "answers not an object",
			req:     dto.MentalTestRequest{StudentName: "Ana", Answers: json.RawMessage(`[1,2,3,4,5]`)},
			wantMsg: "Invalid score for stressLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _ := newTestFactory(t)
			svc := NewAssessmentService(factory, logger.NewNopLogger())

			req := tt.req
			_, err := svc.Submit(ctx, &req)

			var validationErr *serverutils.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantMsg, validationErr.Message)
			if tt.req.StudentName == "" {
				assert.Equal(t, "StudentName", validationErr.Field)
			}

			count, err := factory.NewUnitOfWork(ctx).MentalTestResultRepository().Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}
