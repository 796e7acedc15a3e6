package dashboard

import "context"

type Stats struct {
	TotalEmployees        int            `json:"total_employees"`
	ActiveEmployees       int            `json:"active_employees"`
	EmployeesOnVacation   int            `json:"employees_on_vacation"`
	EmployeesByDepartment map[string]int `json:"employees_by_department"`
}

type Repository interface {
	GetStats(ctx context.Context) (Stats, error)
}

type Service interface {
	GetStats(ctx context.Context) (Stats, error)
}
