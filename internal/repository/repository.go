package repository

import (
	"stock-dashboard/config"
	"stock-dashboard/pkg/httpclient"
	"stock-dashboard/pkg/logger"
)

type Repository struct {
	DashboardRepo DashboardRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	client := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	return &Repository{
		DashboardRepo: NewDashboardRepository(cfg, client, log),
	}
}
