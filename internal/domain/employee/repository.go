package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Detail, error)
	GetByEmail(ctx context.Context, email string) (Detail, error)
	GetAll(ctx context.Context) ([]Detail, error)
	// ExistsByEmail reports whether another employee (excluding excludeID,
	// 0 for none) already uses the email.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	// ExistsByDocument reports whether another employee (excluding
	// excludeID, 0 for none) already uses the document number.
	ExistsByDocument(ctx context.Context, documentNumber string, excludeID int64) (bool, error)
	// ExistsByDocumentOrEmail is the spreadsheet-import duplicate probe.
	ExistsByDocumentOrEmail(ctx context.Context, documentNumber, email string) (bool, error)
}
