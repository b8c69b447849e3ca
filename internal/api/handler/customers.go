package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
)

func ListCustomers(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar clientes")
			return
		}

		respondJSON(w, http.StatusOK, customers)
	}
}

func FilterCustomers(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.ListFilteredCustomers(r.Context(), r.URL.Query().Get("query"), pageParam(r))
		if err != nil {
			writeServiceError(w, err, "Erro ao filtrar clientes")
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}
