package service

import (
	"stock-dashboard/internal/repository"
	"stock-dashboard/internal/view"
	"stock-dashboard/pkg/logger"
)

type Service struct {
	DashboardService DashboardService
}

func NewService(
	log *logger.Logger,
	repo *repository.Repository,
	renderer *view.Renderer,
) *Service {
	return &Service{
		DashboardService: NewDashboardService(log, repo.DashboardRepo, renderer),
	}
}
