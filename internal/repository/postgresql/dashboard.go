package postgresql

import (
	"context"
	"fmt"

	"github.com/talentosplus/talentos-backend-go/internal/domain/dashboard"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// GetStats implements dashboard.Repository.
func (r *dashboardRepositoryImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	stats := dashboard.Stats{
		EmployeesByDepartment: make(map[string]int),
	}

	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status = 'OnVacation')
		FROM employees
	`).Scan(&stats.TotalEmployees, &stats.ActiveEmployees, &stats.EmployeesOnVacation)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get employee counts: %w", err)
	}

	// Departments without employees are left out of the breakdown.
	rows, err := q.Query(ctx, `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		JOIN employees e ON e.department_id = d.id
		GROUP BY d.name
		ORDER BY d.name ASC
	`)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get department breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return dashboard.Stats{}, fmt.Errorf("failed to scan department count: %w", err)
		}
		stats.EmployeesByDepartment[name] = count
	}

	if err = rows.Err(); err != nil {
		return dashboard.Stats{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
