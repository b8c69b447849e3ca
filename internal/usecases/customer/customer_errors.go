package customer

import (
	"errors"
	"fmt"
)

var (
	ErrFetchCustomers = errors.New("error fetching customers from database")
	ErrFetchRevenue   = errors.New("error fetching revenue from database")
	ErrFetchCardData  = errors.New("error fetching card data from database")
)

// CustomerError é um erro com contexto adicional para consultas do painel
type CustomerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CustomerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CustomerError) Unwrap() error {
	return e.Err
}

func NewCustomerError(err error, code string, details string) *CustomerError {
	return &CustomerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
