package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
)

// invoiceRequest aceita o valor como texto ou número
type invoiceRequest struct {
	CustomerID string `json:"customerId"`
	Amount     any    `json:"amount"`
	Status     string `json:"status"`
}

func (req invoiceRequest) form() domain.InvoiceForm {
	var amount string
	switch v := req.Amount.(type) {
	case string:
		amount = v
	case float64:
		amount = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return domain.InvoiceForm{
		CustomerID: req.CustomerID,
		Amount:     amount,
		Status:     req.Status,
	}
}

func decodeInvoiceForm(r *http.Request) (domain.InvoiceForm, error) {
	if isJSON(r) {
		var req invoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return domain.InvoiceForm{}, err
		}
		return req.form(), nil
	}

	if err := r.ParseForm(); err != nil {
		return domain.InvoiceForm{}, err
	}

	return domain.InvoiceForm{
		CustomerID: r.PostForm.Get("customerId"),
		Amount:     r.PostForm.Get("amount"),
		Status:     r.PostForm.Get("status"),
	}, nil
}

// writeMutationResult redireciona para a listagem em caso de sucesso ou devolve o estado com 422
func writeMutationResult(w http.ResponseWriter, r *http.Request, result *domain.MutationResult) {
	if result.Succeeded() {
		http.Redirect(w, r, result.RedirectTo, http.StatusSeeOther)
		return
	}

	respondJSON(w, http.StatusUnprocessableEntity, result.State)
}

func CreateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeInvoiceForm(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeMutationResult(w, r, service.CreateInvoice(r.Context(), form))
	}
}

func UpdateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		form, err := decodeInvoiceForm(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeMutationResult(w, r, service.UpdateInvoice(r.Context(), id, form))
	}
}

func DeleteInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteInvoice(r.Context(), id); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao remover fatura")
			writeServiceError(w, err, "Erro ao remover fatura")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		invoice, err := service.GetInvoice(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar fatura")
			return
		}

		respondJSON(w, http.StatusOK, invoice)
	}
}

func ListInvoices(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.ListInvoices(r.Context(), r.URL.Query().Get("query"), pageParam(r))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar faturas")
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}
