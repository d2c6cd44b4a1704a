package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized       = errors.New("caller is not an administrator")
	ErrUserNotFound       = errors.New("user not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrMissingUserName    = errors.New("user has no name on record")
	ErrDatabaseError      = errors.New("database error")
	ErrIdentityProvider   = errors.New("identity provider error")
	ErrPaymentGateway     = errors.New("payment gateway error")
)

// IncompleteProgressError is returned by certificate issuance when the user
// has not finished every module. The message carries the current progress
// so the client can render "4/5".
type IncompleteProgressError struct {
	Completed int64
	Total     int64
}

func (e *IncompleteProgressError) Error() string {
	return fmt.Sprintf("Conclua todos os módulos para emitir o certificado. Progresso: %d/%d.", e.Completed, e.Total)
}
