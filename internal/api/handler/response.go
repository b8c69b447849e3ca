package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz erros tipados dos serviços para o formato da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var invoiceErr *invoicing.InvoiceError
	if errors.As(err, &invoiceErr) {
		apiErrors.WriteError(w, invoiceErr.Code, invoiceErr.Error(), nil)
		return
	}

	var customerErr *customer.CustomerError
	if errors.As(err, &customerErr) {
		apiErrors.WriteError(w, customerErr.Code, customerErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// pageParam lê o parâmetro page; valores ausentes ou inválidos viram 1
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
