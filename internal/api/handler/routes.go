package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-dashboard-api/pkg/metrics"
	"github.com/vfg2006/invoice-dashboard-api/pkg/middleware"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiter *middleware.LoginLimiter, secureCookies bool) []router.Route {
	loginMiddlewares := []func(http.Handler) http.Handler{}
	if limiter != nil {
		loginMiddlewares = append(loginMiddlewares, limiter.Middleware())
	}

	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service, secureCookies),
			Middlewares: loginMiddlewares,
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(secureCookies),
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: ListInvoices(service),
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodPost,
			Handler: CreateInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodGet,
			Handler: GetInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodPut,
			Handler: UpdateInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInvoice(service),
		},
	}
}

func Customers(service customer.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/v1/customers/filter",
			Method:  http.MethodGet,
			Handler: FilterCustomers(service),
		},
	}
}

func Dashboard(service customer.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(service),
		},
		{
			Path:    "/v1/dashboard/revenue/chart",
			Method:  http.MethodGet,
			Handler: GetRevenueChart(service),
		},
		{
			Path:    "/v1/dashboard/cards",
			Method:  http.MethodGet,
			Handler: GetCardData(service),
		},
	}
}
