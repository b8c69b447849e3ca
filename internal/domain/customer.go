package domain

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerSummary é um cliente com os totais das suas faturas em centavos
type CustomerSummary struct {
	Customer
	TotalInvoices int64 `json:"total_invoices"`
	TotalPending  int64 `json:"total_pending"`
	TotalPaid     int64 `json:"total_paid"`
}

type CustomerPage struct {
	Customers  []*CustomerSummary `json:"customers"`
	Query      string             `json:"query"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

// CardData são os totais exibidos nos cards do painel
type CardData struct {
	NumberOfInvoices  int64 `json:"number_of_invoices"`
	NumberOfCustomers int64 `json:"number_of_customers"`
	TotalPaid         int64 `json:"total_paid_invoices"`
	TotalPending      int64 `json:"total_pending_invoices"`
}
