package dashboard

import (
	"context"

	"github.com/talentosplus/talentos-backend-go/internal/domain/dashboard"
)

type dashboardServiceImpl struct {
	repo dashboard.Repository
}

func NewDashboardService(repo dashboard.Repository) dashboard.Service {
	return &dashboardServiceImpl{repo: repo}
}

func (s *dashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	if stats.EmployeesByDepartment == nil {
		stats.EmployeesByDepartment = make(map[string]int)
	}
	return stats, nil
}
