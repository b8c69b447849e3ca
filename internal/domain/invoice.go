// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoicesView identifica a listagem de faturas para invalidação de cache e navegação
const InvoicesView = "/dashboard/invoices"

// DateLayout é o formato de data persistido nas faturas
const DateLayout = "2006-01-02"

// Invoice representa uma fatura; Amount é sempre em centavos
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"` // Formato yyyy-mm-dd
}

// InvoiceForm é a submissão bruta do formulário de fatura
type InvoiceForm struct {
	CustomerID string `json:"customerId" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=pending paid"`
}

// InvoiceRow é uma linha da listagem de faturas com os dados do cliente
type InvoiceRow struct {
	ID       string        `json:"id"`
	Amount   int64         `json:"amount"`
	Date     string        `json:"date"`
	Status   InvoiceStatus `json:"status"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	ImageURL string        `json:"image_url"`
}

// InvoicePage é uma página da listagem filtrada de faturas
type InvoicePage struct {
	Invoices   []*InvoiceRow `json:"invoices"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// MutationResult é o retorno de criação e atualização de faturas.
// Em caso de sucesso State é nil e RedirectTo aponta para a listagem.
type MutationResult struct {
	State      *ValidationState `json:"state,omitempty"`
	RedirectTo string           `json:"redirect_to,omitempty"`
}

func (r *MutationResult) Succeeded() bool {
	return r != nil && r.State == nil
}
