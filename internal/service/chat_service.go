package service

import (
	"context"
	"errors"
	"time"

	"mindful-campus-be/internal/constant"
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/entity"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/serverutils"
	"mindful-campus-be/internal/repository/unitofwork"
	"mindful-campus-be/pkg/llm"

	"github.com/sony/gobreaker/v2"
)

var errEmptyReply = errors.New("empty reply from model")

// ChatThrottle limits chat messages per client.
type ChatThrottle interface {
	Allow(clientID string) bool
}

type IChatService interface {
	Chat(ctx context.Context, clientID string, message interface{}) (*dto.ChatResponse, error)
	Reply(ctx context.Context, message string) string
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider // nil means fallback-only
	throttle   ChatThrottle
	breaker    *gobreaker.CircuitBreaker[string]
	timeout    time.Duration
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	throttle ChatThrottle,
	timeout time.Duration,
	logger logger.ILogger,
) IChatService {
	s := &chatService{
		uowFactory: uowFactory,
		provider:   provider,
		throttle:   throttle,
		timeout:    timeout,
		logger:     logger,
	}

	s.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        constant.ChatBreakerName,
		MaxRequests: 1,
		Timeout:     constant.ChatBreakerOpenSeconds * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= constant.ChatBreakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("CHAT", "Chat breaker state changed", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return s
}

func (s *chatService) Chat(ctx context.Context, clientID string, message interface{}) (*dto.ChatResponse, error) {
	text, ok := message.(string)
	if !ok || text == "" {
		return nil, serverutils.NewValidationError("message", constant.ChatMissingMessage)
	}

	if s.throttle != nil && !s.throttle.Allow(clientID) {
		s.logger.Warn("CHAT", "Chat throttled", map[string]interface{}{"client": clientID})
		return nil, &serverutils.ThrottledError{Message: constant.ChatThrottledMessage}
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).ChatMessageRepository()

	if err := repo.Create(ctx, &entity.ChatMessage{Role: entity.ChatRoleUser, Message: text}); err != nil {
		s.logger.Error("CHAT", "Failed to store user message", map[string]interface{}{"error": err})
		return nil, serverutils.NewPersistenceError("insert user chat message", err)
	}

	reply := s.Reply(ctx, text)

	if err := repo.Create(ctx, &entity.ChatMessage{Role: entity.ChatRoleAssistant, Message: reply}); err != nil {
		s.logger.Error("CHAT", "Failed to store assistant reply", map[string]interface{}{"error": err})
		return nil, serverutils.NewPersistenceError("insert assistant chat message", err)
	}

	return &dto.ChatResponse{Reply: reply}, nil
}

// Reply makes at most one model call and never fails: any problem yields
// the fallback text.
func (s *chatService) Reply(ctx context.Context, message string) string {
	if s.provider == nil {
		return constant.ChatFallbackReply
	}

	reply, err := s.breaker.Execute(func() (string, error) {
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		out, err := s.provider.Chat(callCtx, []llm.Message{
			{Role: constant.ChatMessageRoleSystem, Content: constant.ChatSystemPrompt},
			{Role: constant.ChatMessageRoleUser, Content: message},
		}, llm.WithTemperature(constant.ChatTemperature), llm.WithMaxTokens(constant.ChatMaxTokens))
		if err != nil {
			return "", err
		}
		if out == "" {
			return "", errEmptyReply
		}
		return out, nil
	})
	if err != nil {
		s.logger.Warn("CHAT", "Using fallback reply", map[string]interface{}{"error": err.Error()})
		return constant.ChatFallbackReply
	}

	return reply
}
