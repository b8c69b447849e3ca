package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	customersTable = "customers"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	ListFilteredCustomers(ctx context.Context, query string, limit, offset uint64) ([]*domain.CustomerSummary, error)
	CountFilteredCustomers(ctx context.Context, query string) (int64, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "image_url").
		From(customersTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes")
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.ImageURL); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cliente")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return customers, nil
}

// customerFilter compara o termo com nome ou email sem diferenciar maiúsculas
func customerFilter(query string) squirrel.Sqlizer {
	pattern := "%" + query + "%"
	return squirrel.Or{
		squirrel.ILike{"c.name": pattern},
		squirrel.ILike{"c.email": pattern},
	}
}

func (r *customerRepository) ListFilteredCustomers(ctx context.Context, query string, limit, offset uint64) ([]*domain.CustomerSummary, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"c.id",
			"c.name",
			"c.email",
			"c.image_url",
			"COUNT(i.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending",
			"COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid",
		).
		From("customers c").
		LeftJoin("invoices i ON c.id = i.customer_id").
		Where(customerFilter(query)).
		GroupBy("c.id", "c.name", "c.email", "c.image_url").
		OrderBy("c.name ASC", "c.id ASC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao filtrar clientes")
	}
	defer rows.Close()

	customers := make([]*domain.CustomerSummary, 0)
	for rows.Next() {
		var summary domain.CustomerSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Email,
			&summary.ImageURL,
			&summary.TotalInvoices,
			&summary.TotalPending,
			&summary.TotalPaid,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cliente")
		}
		customers = append(customers, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return customers, nil
}

func (r *customerRepository) CountFilteredCustomers(ctx context.Context, query string) (int64, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From("customers c").
		Where(customerFilter(query)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar clientes")
	}

	return count, nil
}
