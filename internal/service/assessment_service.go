package service

import (
	"bytes"
	"context"
	"errors"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/repository/unitofwork"
	"mindful-campus-be/pkg/wellness"

	"github.com/goccy/go-json"
)

type IAssessmentService interface {
	Submit(ctx context.Context, req *dto.MentalTestRequest) (*dto.MentalTestResponse, error)
}

type assessmentService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAssessmentService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAssessmentService {
	return &assessmentService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// answersMissing treats the falsy JSON values as "no answers given".
// Any spelling of numeric zero counts (0, 0.0, -0, 0e5).
func answersMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`:
		return true
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err == nil {
		return number == 0
	}
	return false
}

func (s *assessmentService) Submit(ctx context.Context, req *dto.MentalTestRequest) (*dto.MentalTestResponse, error) {
	if err := serverutils.ValidateRequest(req, constant.MentalTestMissingMessage); err != nil {
		return nil, err
	}
	if answersMissing(req.Answers) {
		return nil, serverutils.NewValidationError("answers", constant.MentalTestMissingMessage)
	}

	// Non-object answers leave the map empty, so the first field is reported.
	raw := map[string]json.RawMessage{}
	_ = json.Unmarshal(req.Answers, &raw)

	answers, err := wellness.ParseAnswers(raw)
	if err != nil {
		return nil, s.invalidRating(err)
	}
	average, state, err := wellness.Score(answers)
	if err != nil {
		return nil, s.invalidRating(err)
	}

	result := &entity.MentalTestResult{
		StudentName:   req.StudentName,
		Email:         req.Email,
		Answers:       answers,
		AverageScore:  average,
		WellnessState: state,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MentalTestResultRepository().Create(ctx, result); err != nil {
		s.logger.Error("ASSESSMENT", "Failed to store test result", map[string]interface{}{"error": err})
		return nil, serverutils.NewPersistenceError("insert mental test result", err)
	}

	return &dto.MentalTestResponse{
		Success:       true,
		AverageScore:  wellness.Round2(average),
		WellnessState: string(state),
		Guidance:      constant.MentalTestGuidance,
	}, nil
}

func (s *assessmentService) invalidRating(err error) error {
	var ratingErr *wellness.InvalidRatingError
	if errors.As(err, &ratingErr) {
		return serverutils.NewValidationError(ratingErr.Field, ratingErr.Error())
	}
	return serverutils.NewValidationError("answers", err.Error())
}
