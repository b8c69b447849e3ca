package invoicing

import (
	"errors"
	"fmt"
)

// Mensagens exibidas no formulário de faturas
const (
	MsgSelectCustomer        = "Please select a customer."
	MsgAmountGreaterThanZero = "Please enter an amount greater than $0."
	MsgAmountTooLarge        = "Please enter a smaller amount."
	MsgSelectStatus          = "Please select an invoice status."

	MsgMissingFieldsCreate = "Missing Fields. Failed to Create Invoice."
	MsgMissingFieldsUpdate = "Missing Fields. Failed to Update Invoice."
	MsgDatabaseErrorCreate = "Database Error: Failed to Create Invoice."
	MsgDatabaseErrorUpdate = "Database Error: Failed to Update Invoice."
)

// Erros específicos para o contexto de faturas
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrDeleteInvoice   = errors.New("error deleting invoice")
	ErrFetchInvoices   = errors.New("error fetching invoices from database")
)

// InvoiceError é um erro com contexto adicional para faturas
type InvoiceError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	InvoiceID string // ID da fatura envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InvoiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

func NewInvoiceError(err error, code string, details string) *InvoiceError {
	return &InvoiceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewInvoiceErrorWithID(err error, code string, invoiceID string, details string) *InvoiceError {
	return &InvoiceError{
		Err:       err,
		Code:      code,
		InvoiceID: invoiceID,
		Details:   details,
	}
}
