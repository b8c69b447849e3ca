package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
)

func GetRevenue(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := service.RevenueFromCustomers(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar receita")
			return
		}

		respondJSON(w, http.StatusOK, revenue)
	}
}

func GetRevenueChart(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.RevenueChart(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao montar gráfico de receita")
			return
		}

		respondJSON(w, http.StatusOK, chart)
	}
}

func GetCardData(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := service.GetCardData(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar dados do painel")
			return
		}

		respondJSON(w, http.StatusOK, card)
	}
}
