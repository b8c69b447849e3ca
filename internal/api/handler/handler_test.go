package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/invoice-dashboard-api/internal/cache"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	handler      http.Handler
	invoiceRepo  *mocks.MockInvoiceRepository
	customerRepo *mocks.MockCustomerRepository
	userRepo     *mocks.MockUserRepository
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	viewCache := cache.NewViewCache(16, time.Minute)
	invoiceService := invoicing.NewService(invoiceRepo, viewCache).(*invoicing.Service).WithCache(viewCache)
	customerService := customer.NewService(customerRepo, invoiceRepo)
	authenticator := authenticating.NewService(userRepo, &config.Config{Auth: config.Auth{Secret: "test-secret", SessionTTL: time.Hour}})

	rt := router.New(
		router.WithRoutes(Healthcheck(stubPinger{})...),
		router.WithRoutes(Authentication(authenticator, middleware.NewLoginLimiter(100, 100), false)...),
		router.WithRoutes(Invoices(invoiceService)...),
		router.WithRoutes(Customers(customerService)...),
		router.WithRoutes(Dashboard(customerService)...),
	)

	return &fixture{
		handler:      rt,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateInvoice(t *testing.T) {
	t.Run("formulário válido redireciona para a listagem", func(t *testing.T) {
		f := newFixture(t)

		f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invoice *domain.Invoice) error {
				assert.Equal(t, int64(5000), invoice.Amount)
				assert.Equal(t, "c1", invoice.CustomerID)
				return nil
			},
		)

		rec := f.do(formRequest(http.MethodPost, "/v1/invoices", url.Values{
			"customerId": {"c1"},
			"amount":     {"50.00"},
			"status":     {"pending"},
		}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, domain.InvoicesView, rec.Header().Get("Location"))
	})

	t.Run("json com valor numérico", func(t *testing.T) {
		f := newFixture(t)

		f.invoiceRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invoice *domain.Invoice) error {
				assert.Equal(t, int64(1234), invoice.Amount)
				return nil
			},
		)

		rec := f.do(jsonRequest(http.MethodPost, "/v1/invoices", `{"customerId":"c1","amount":12.34,"status":"paid"}`))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("formulário inválido devolve o estado", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(formRequest(http.MethodPost, "/v1/invoices", url.Values{"amount": {"0"}}))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var state domain.ValidationState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, invoicing.MsgMissingFieldsCreate, state.Message)
		assert.Equal(t, []string{invoicing.MsgSelectCustomer}, state.Errors["customerId"])
		assert.Equal(t, []string{invoicing.MsgAmountGreaterThanZero}, state.Errors["amount"])
		assert.Equal(t, []string{invoicing.MsgSelectStatus}, state.Errors["status"])
	})

	t.Run("json mal formado", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(jsonRequest(http.MethodPost, "/v1/invoices", `{"customerId":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateInvoice(t *testing.T) {
	f := newFixture(t)

	f.invoiceRepo.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	rec := f.do(formRequest(http.MethodPut, "/v1/invoices/inv-1", url.Values{
		"customerId": {"c1"},
		"amount":     {"10"},
		"status":     {"paid"},
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var state domain.ValidationState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, invoicing.MsgDatabaseErrorUpdate, state.Message)
	assert.Empty(t, state.Errors)
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.invoiceRepo.EXPECT().DeleteInvoice(gomock.Any(), "inv-1").Return(nil)

		rec := f.do(httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("falha de armazenamento", func(t *testing.T) {
		f := newFixture(t)
		f.invoiceRepo.EXPECT().DeleteInvoice(gomock.Any(), "inv-1").Return(errors.New("boom"))

		rec := f.do(httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
	})
}

func TestGetInvoiceNotFound(t *testing.T) {
	f := newFixture(t)
	f.invoiceRepo.EXPECT().GetInvoiceByID(gomock.Any(), "nope").Return(nil, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/invoices/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListInvoicesPageParam(t *testing.T) {
	f := newFixture(t)

	f.invoiceRepo.EXPECT().ListFilteredInvoices(gomock.Any(), "lee", uint64(6), uint64(0)).Return([]*domain.InvoiceRow{}, nil)
	f.invoiceRepo.EXPECT().CountFilteredInvoices(gomock.Any(), "lee").Return(int64(0), nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/invoices?query=lee&page=abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.InvoicePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
}

func TestFilterCustomers(t *testing.T) {
	f := newFixture(t)

	f.customerRepo.EXPECT().ListFilteredCustomers(gomock.Any(), "amy", uint64(6), uint64(6)).Return([]*domain.CustomerSummary{}, nil)
	f.customerRepo.EXPECT().CountFilteredCustomers(gomock.Any(), "amy").Return(int64(8), nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/customers/filter?query=amy&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.CustomerPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
}

func TestListCustomersError(t *testing.T) {
	f := newFixture(t)
	f.customerRepo.EXPECT().ListCustomers(gomock.Any()).Return(nil, errors.New("boom"))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/customers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)

	f.invoiceRepo.EXPECT().RevenueByMonth(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.invoiceRepo.EXPECT().GetCardData(gomock.Any()).Return(&domain.CardData{NumberOfCustomers: 6}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard/revenue", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var revenue []domain.RevenuePoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revenue))
	assert.Len(t, revenue, domain.RevenueMonths)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard/revenue/chart", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var chart domain.RevenueChart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chart))
	assert.Equal(t, int64(1000), chart.TopLabel)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/v1/dashboard/cards", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var card domain.CardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, int64(6), card.NumberOfCustomers)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Name: "User", Email: "user@nextmail.com", PasswordHash: string(hash)}

	t.Run("sucesso grava o cookie de sessão", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		rec := f.do(formRequest(http.MethodPost, "/v1/login", url.Values{
			"email":    {user.Email},
			"password": {"123456"},
		}))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.NotContains(t, rec.Body.String(), user.PasswordHash)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Equal(t, resp.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("senha errada", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		rec := f.do(jsonRequest(http.MethodPost, "/v1/login", `{"email":"user@nextmail.com","password":"wrong-password"}`))

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp LoginFailure
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, authenticating.MsgInvalidCredentials, resp.Message)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("falha de leitura", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		rec := f.do(jsonRequest(http.MethodPost, "/v1/login", `{"email":"user@nextmail.com","password":"123456"}`))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), authenticating.MsgSomethingWentWrong)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/logout", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(stubPinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthcheckHandler(stubPinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
