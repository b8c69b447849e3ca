package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

func newMockDB(t *testing.T) (sqlmock.Sqlmock, InvoiceRepository, CustomerRepository, UserRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewInvoiceRepository(db), NewCustomerRepository(db), NewUserRepository(db)
}

func TestInvoiceRepository_CreateInvoice(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoices (id,customer_id,amount,status,date) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs("inv-1", "c1", int64(5000), "pending", "2024-03-15").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateInvoice(context.Background(), &domain.Invoice{
		ID:         "inv-1",
		CustomerID: "c1",
		Amount:     5000,
		Status:     domain.InvoiceStatusPending,
		Date:       "2024-03-15",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_CreateInvoiceError(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectExec("INSERT INTO invoices").WillReturnError(errors.New("connection reset"))

	err := repo.CreateInvoice(context.Background(), &domain.Invoice{ID: "inv-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao inserir fatura")
}

func TestInvoiceRepository_UpdateInvoiceKeepsDate(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4")).
		WithArgs("c2", int64(1999), "paid", "inv-9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateInvoice(context.Background(), &domain.Invoice{
		ID:         "inv-9",
		CustomerID: "c2",
		Amount:     1999,
		Status:     domain.InvoiceStatusPaid,
		Date:       "2020-01-01",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_DeleteMissingInvoice(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM invoices WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteInvoice(context.Background(), "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_GetInvoiceByID(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices WHERE id = $1")).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow("inv-1", "c1", int64(15795), "pending", "2022-12-06"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}))

	invoice, err := repo.GetInvoiceByID(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Invoice{
		ID:         "inv-1",
		CustomerID: "c1",
		Amount:     15795,
		Status:     domain.InvoiceStatusPending,
		Date:       "2022-12-06",
	}, invoice)

	invoice, err = repo.GetInvoiceByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, invoice)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_ListFilteredInvoices(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY i.date DESC, i.id ASC LIMIT 6 OFFSET 6")).
		WithArgs("%lee%", "%lee%", "%lee%", "%lee%", "%lee%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "date", "status", "name", "email", "image_url"}).
			AddRow("inv-1", int64(20348), "2022-11-14", "pending", "Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"))

	rows, err := repo.ListFilteredInvoices(context.Background(), "lee", 6, 6)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lee Robinson", rows[0].Name)
	assert.Equal(t, int64(20348), rows[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_CountFilteredInvoices(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM invoices i JOIN customers c ON i.customer_id = c.id")).
		WithArgs("%%", "%%", "%%", "%%", "%%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(13)))

	count, err := repo.CountFilteredInvoices(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, int64(13), count)
}

func TestInvoiceRepository_RevenueByMonth(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	start := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY month ORDER BY month ASC")).
		WithArgs("2023-10-01", "2024-04-01").
		WillReturnRows(sqlmock.NewRows([]string{"month", "total"}).
			AddRow("2023-12", int64(1000)).
			AddRow("2024-03", int64(250)))

	points, err := repo.RevenueByMonth(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, []domain.RevenuePoint{
		{Month: "2023-12", Total: 1000},
		{Month: "2024-03", Total: 250},
	}, points)
}

func TestInvoiceRepository_GetCardData(t *testing.T) {
	mock, repo, _, _ := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM invoices")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(15)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM customers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery("SUM").
		WillReturnRows(sqlmock.NewRows([]string{"paid", "pending"}).AddRow(int64(90000), int64(12000)))

	card, err := repo.GetCardData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.CardData{
		NumberOfInvoices:  15,
		NumberOfCustomers: 6,
		TotalPaid:         90000,
		TotalPending:      12000,
	}, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}
