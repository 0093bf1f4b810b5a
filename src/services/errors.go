package services

import "fmt"

// ValidationError marks a request that failed field validation; controllers
// answer it with HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError marks an unknown id; controllers answer it with HTTP 404.
type NotFoundError struct {
	Resource string
	Id       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d não encontrado", e.Resource, e.Id)
}

// LoteError reports how many rows of a batch had been created before the
// failing one. The whole batch runs in one transaction, so nothing is left
// committed; the count exists for diagnostics only.
type LoteError struct {
	Created int
	Err     error
}

func (e *LoteError) Error() string {
	return fmt.Sprintf("lote interrompido após %d tombamentos: %v", e.Created, e.Err)
}

func (e *LoteError) Unwrap() error {
	return e.Err
}
