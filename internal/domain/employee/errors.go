package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("empleado no encontrado")
)

// DuplicateError reports an email or document number collision. It
// carries the user-facing message verbatim so handlers can surface it
// without rewording.
type DuplicateError struct {
	Field   string // "email" or "document_number"
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}
