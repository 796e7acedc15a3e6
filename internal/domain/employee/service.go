package employee

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) error
	Update(ctx context.Context, id int64, req CreateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
	ImportExcel(ctx context.Context, content []byte) (ImportResult, error)
	ImportJSON(ctx context.Context, content []byte) (ImportResult, error)
	ExportExcel(ctx context.Context) ([]byte, error)
}
