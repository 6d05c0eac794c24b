package service

import (
	"context"
	"time"

	"mindful-campus-be/internal/repository/unitofwork"
)

type IHealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHealthService(uowFactory unitofwork.RepositoryFactory) IHealthService {
	return &healthService{uowFactory: uowFactory}
}

func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.uowFactory.Ping(ctx)
}
