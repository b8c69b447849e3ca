package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	invoicesTable = "invoices"
)

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice *domain.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	GetInvoiceByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListFilteredInvoices(ctx context.Context, query string, limit, offset uint64) ([]*domain.InvoiceRow, error)
	CountFilteredInvoices(ctx context.Context, query string) (int64, error)
	RevenueByMonth(ctx context.Context, start, end time.Time) ([]domain.RevenuePoint, error)
	GetCardData(ctx context.Context) (*domain.CardData, error)
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	query, args, err := squirrel.
		Insert(invoicesTable).
		Columns("id", "customer_id", "amount", "status", "date").
		Values(invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir fatura")
	}

	return nil
}

// UpdateInvoice altera apenas cliente, valor e status; id e data são imutáveis
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	query, args, err := squirrel.
		Update(invoicesTable).
		Set("customer_id", invoice.CustomerID).
		Set("amount", invoice.Amount).
		Set("status", invoice.Status).
		Where(squirrel.Eq{"id": invoice.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao atualizar fatura")
	}

	return nil
}

// DeleteInvoice não trata id inexistente como erro
func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover fatura")
	}

	return nil
}

func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "amount", "status", "to_char(date, 'YYYY-MM-DD')").
		From(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var invoice domain.Invoice
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&invoice.Status,
		&invoice.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar fatura")
	}

	return &invoice, nil
}

// invoiceFilter busca o termo em cliente, valor, data e status
func invoiceFilter(query string) squirrel.Sqlizer {
	pattern := "%" + query + "%"
	return squirrel.Or{
		squirrel.ILike{"c.name": pattern},
		squirrel.ILike{"c.email": pattern},
		squirrel.Expr("i.amount::text ILIKE ?", pattern),
		squirrel.Expr("i.date::text ILIKE ?", pattern),
		squirrel.ILike{"i.status": pattern},
	}
}

func (r *invoiceRepository) ListFilteredInvoices(ctx context.Context, query string, limit, offset uint64) ([]*domain.InvoiceRow, error) {
	sqlQuery, args, err := squirrel.
		Select("i.id", "i.amount", "to_char(i.date, 'YYYY-MM-DD')", "i.status", "c.name", "c.email", "c.image_url").
		From("invoices i").
		Join("customers c ON i.customer_id = c.id").
		Where(invoiceFilter(query)).
		OrderBy("i.date DESC", "i.id ASC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar faturas")
	}
	defer rows.Close()

	invoices := make([]*domain.InvoiceRow, 0)
	for rows.Next() {
		var row domain.InvoiceRow
		if err := rows.Scan(
			&row.ID,
			&row.Amount,
			&row.Date,
			&row.Status,
			&row.Name,
			&row.Email,
			&row.ImageURL,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fatura")
		}
		invoices = append(invoices, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return invoices, nil
}

func (r *invoiceRepository) CountFilteredInvoices(ctx context.Context, query string) (int64, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From("invoices i").
		Join("customers c ON i.customer_id = c.id").
		Where(invoiceFilter(query)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar faturas")
	}

	return count, nil
}

// RevenueByMonth soma os valores em centavos por mês no intervalo [start, end)
func (r *invoiceRepository) RevenueByMonth(ctx context.Context, start, end time.Time) ([]domain.RevenuePoint, error) {
	sqlQuery, args, err := squirrel.
		Select("to_char(i.date, 'YYYY-MM') AS month", "SUM(i.amount) AS total").
		From("invoices i").
		Join("customers c ON c.id = i.customer_id").
		Where(squirrel.GtOrEq{"i.date": start.Format(domain.DateLayout)}).
		Where(squirrel.Lt{"i.date": end.Format(domain.DateLayout)}).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita")
	}
	defer rows.Close()

	points := make([]domain.RevenuePoint, 0)
	for rows.Next() {
		var point domain.RevenuePoint
		if err := rows.Scan(&point.Month, &point.Total); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear receita")
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return points, nil
}

func (r *invoiceRepository) GetCardData(ctx context.Context) (*domain.CardData, error) {
	var card domain.CardData

	invoiceCount, args, err := squirrel.Select("COUNT(*)").From(invoicesTable).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}
	if err := r.conn.QueryRowContext(ctx, invoiceCount, args...).Scan(&card.NumberOfInvoices); err != nil {
		return nil, errors.Wrap(err, "erro ao contar faturas")
	}

	customerCount, args, err := squirrel.Select("COUNT(*)").From(customersTable).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}
	if err := r.conn.QueryRowContext(ctx, customerCount, args...).Scan(&card.NumberOfCustomers); err != nil {
		return nil, errors.Wrap(err, "erro ao contar clientes")
	}

	totals, args, err := squirrel.
		Select(
			"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid",
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending",
		).
		From(invoicesTable).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}
	if err := r.conn.QueryRowContext(ctx, totals, args...).Scan(&card.TotalPaid, &card.TotalPending); err != nil {
		return nil, errors.Wrap(err, "erro ao somar faturas por status")
	}

	return &card, nil
}
