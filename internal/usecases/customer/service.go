package customer

import (
	"context"
	"math"
	"time"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

// chartStep é o degrau usado para o rótulo superior do gráfico de receita
const chartStep = 1000

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	ListFilteredCustomers(ctx context.Context, query string, page int) (*domain.CustomerPage, error)
	RevenueFromCustomers(ctx context.Context) ([]domain.RevenuePoint, error)
	RevenueChart(ctx context.Context) (*domain.RevenueChart, error)
	GetCardData(ctx context.Context) (*domain.CardData, error)
}

type Service struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	now          func() time.Time
}

func NewService(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) CustomerService {
	return &Service{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		now:          time.Now,
	}
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clientes")
		return nil, NewCustomerError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes no banco de dados")
	}

	return customers, nil
}

// ListFilteredCustomers busca por nome ou email, sem diferenciar maiúsculas, paginando de 6 em 6
func (s *Service) ListFilteredCustomers(ctx context.Context, query string, page int) (*domain.CustomerPage, error) {
	logger := log.ForContext(ctx)
	page, limit, offset := utils.PageWindow(page)

	customers, err := s.customerRepo.ListFilteredCustomers(ctx, query, limit, offset)
	if err != nil {
		logger.WithError(err).Error("Erro ao filtrar clientes")
		return nil, NewCustomerError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "Falha ao filtrar clientes no banco de dados")
	}

	count, err := s.customerRepo.CountFilteredCustomers(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Erro ao contar clientes")
		return nil, NewCustomerError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "Falha ao contar clientes no banco de dados")
	}

	return &domain.CustomerPage{
		Customers:  customers,
		Query:      query,
		Page:       page,
		TotalPages: utils.TotalPages(count),
	}, nil
}

// RevenueFromCustomers retorna a receita dos últimos 6 meses, do mais antigo
// ao atual, com zero nos meses sem faturas
func (s *Service) RevenueFromCustomers(ctx context.Context) ([]domain.RevenuePoint, error) {
	months, start, end := revenueWindow(s.now())

	points, err := s.invoiceRepo.RevenueByMonth(ctx, start, end)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao agregar receita")
		return nil, NewCustomerError(ErrFetchRevenue, apiErrors.ErrDatabaseOperation, "Falha ao agregar receita no banco de dados")
	}

	totals := make(map[string]int64, len(points))
	for _, point := range points {
		totals[point.Month] += point.Total
	}

	revenue := make([]domain.RevenuePoint, 0, len(months))
	for _, month := range months {
		revenue = append(revenue, domain.RevenuePoint{
			Month: month,
			Total: totals[month],
		})
	}

	return revenue, nil
}

// RevenueChart converte a janela de receita para a unidade de exibição
func (s *Service) RevenueChart(ctx context.Context) (*domain.RevenueChart, error) {
	revenue, err := s.RevenueFromCustomers(ctx)
	if err != nil {
		return nil, err
	}

	chart := &domain.RevenueChart{
		Points: make([]domain.RevenueChartPoint, 0, len(revenue)),
	}

	var highest float64
	for _, point := range revenue {
		total := utils.CentsToUnits(point.Total)
		if total > highest {
			highest = total
		}
		if point.Total > 0 {
			chart.HasData = true
		}

		chart.Points = append(chart.Points, domain.RevenueChartPoint{
			Month: point.Month,
			Total: total,
		})
	}

	chart.TopLabel = topLabel(highest)

	return chart, nil
}

func (s *Service) GetCardData(ctx context.Context) (*domain.CardData, error) {
	card, err := s.invoiceRepo.GetCardData(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar dados dos cards")
		return nil, NewCustomerError(ErrFetchCardData, apiErrors.ErrDatabaseOperation, "Falha ao buscar dados do painel")
	}

	return card, nil
}

// revenueWindow devolve os meses da janela (yyyy-mm) e o intervalo [start, end) em datas
func revenueWindow(now time.Time) ([]string, time.Time, time.Time) {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := current.AddDate(0, -(domain.RevenueMonths - 1), 0)
	end := current.AddDate(0, 1, 0)

	months := make([]string, 0, domain.RevenueMonths)
	for month := start; month.Before(end); month = month.AddDate(0, 1, 0) {
		months = append(months, month.Format(domain.MonthLayout))
	}

	return months, start, end
}

func topLabel(highest float64) int64 {
	if highest <= 0 {
		return chartStep
	}

	return int64(math.Ceil(highest/chartStep)) * chartStep
}
