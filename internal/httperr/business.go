package httperr

import "errors"

// Codigos de negocio. El manejador traduce cada codigo al status HTTP
// que corresponda; dentro de los casos de uso solo circula el codigo.
const (
	CodeAuthRequired      = "auth_required"
	CodeForbidden         = "forbidden"
	CodeInvalidInput      = "invalid_input"
	CodeReferenceNotFound = "reference_not_found"
	CodeInsufficientStock = "insufficient_stock"
	CodeDuplicateUser     = "duplicate_user"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
