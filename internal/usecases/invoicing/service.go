package invoicing

import (
	"context"
	"strconv"
	"time"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/cache"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/metrics"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

type Invoicer interface {
	CreateInvoice(ctx context.Context, form domain.InvoiceForm) *domain.MutationResult
	UpdateInvoice(ctx context.Context, id string, form domain.InvoiceForm) *domain.MutationResult
	DeleteInvoice(ctx context.Context, id string) error
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, query string, page int) (*domain.InvoicePage, error)
}

type Service struct {
	invoiceRepo repository.InvoiceRepository
	invalidator cache.Invalidator
	viewCache   *cache.ViewCache
	now         func() time.Time
	newID       func() string
}

func NewService(invoiceRepo repository.InvoiceRepository, invalidator cache.Invalidator) Invoicer {
	return &Service{
		invoiceRepo: invoiceRepo,
		invalidator: invalidator,
		now:         time.Now,
		newID:       utils.NewUUID,
	}
}

// WithCache habilita o cache de leitura da listagem de faturas
func (s *Service) WithCache(viewCache *cache.ViewCache) *Service {
	s.viewCache = viewCache
	return s
}

// CreateInvoice valida o formulário, grava a fatura com a data de hoje e
// sinaliza a listagem. Falhas nunca são propagadas, voltam no resultado.
func (s *Service) CreateInvoice(ctx context.Context, form domain.InvoiceForm) *domain.MutationResult {
	logger := log.ForContext(ctx)

	form = normalizeForm(form)
	amount, state := ValidateForm(form)
	if state != nil {
		state.Message = MsgMissingFieldsCreate
		metrics.RecordInvoiceMutation("create", "invalid")
		return &domain.MutationResult{State: state}
	}

	invoice := &domain.Invoice{
		ID:         s.newID(),
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(form.Status),
		Date:       s.now().UTC().Format(domain.DateLayout),
	}

	if err := s.invoiceRepo.CreateInvoice(ctx, invoice); err != nil {
		logger.WithError(err).WithField("pg_code", repository.PgErrorCode(err)).Error("Erro ao gravar fatura")
		metrics.RecordInvoiceMutation("create", "storage_error")
		return &domain.MutationResult{State: &domain.ValidationState{Message: MsgDatabaseErrorCreate}}
	}

	logger.WithField("invoice_id", invoice.ID).Info("Fatura criada")
	metrics.RecordInvoiceMutation("create", "success")

	return s.succeeded()
}

// UpdateInvoice altera cliente, valor e status da fatura; id e data não mudam
func (s *Service) UpdateInvoice(ctx context.Context, id string, form domain.InvoiceForm) *domain.MutationResult {
	logger := log.ForContext(ctx).WithField("invoice_id", id)

	form = normalizeForm(form)
	amount, state := ValidateForm(form)
	if state != nil {
		state.Message = MsgMissingFieldsUpdate
		metrics.RecordInvoiceMutation("update", "invalid")
		return &domain.MutationResult{State: state}
	}

	invoice := &domain.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(form.Status),
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		logger.WithError(err).WithField("pg_code", repository.PgErrorCode(err)).Error("Erro ao atualizar fatura")
		metrics.RecordInvoiceMutation("update", "storage_error")
		return &domain.MutationResult{State: &domain.ValidationState{Message: MsgDatabaseErrorUpdate}}
	}

	logger.Info("Fatura atualizada")
	metrics.RecordInvoiceMutation("update", "success")

	return s.succeeded()
}

// DeleteInvoice remove a fatura. Id inexistente não é erro e também invalida a listagem.
func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	logger := log.ForContext(ctx).WithField("invoice_id", id)

	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		logger.WithError(err).WithField("pg_code", repository.PgErrorCode(err)).Error("Erro ao remover fatura")
		metrics.RecordInvoiceMutation("delete", "storage_error")
		return NewInvoiceErrorWithID(ErrDeleteInvoice, apiErrors.ErrDatabaseOperation, id, "Falha ao remover fatura no banco de dados")
	}

	s.invalidator.Invalidate(domain.InvoicesView)

	logger.Info("Fatura removida")
	metrics.RecordInvoiceMutation("delete", "success")

	return nil
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetInvoiceByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar fatura")
		return nil, NewInvoiceErrorWithID(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar fatura no banco de dados")
	}

	if invoice == nil {
		return nil, NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, id, "")
	}

	return invoice, nil
}

// ListInvoices retorna uma página da listagem filtrada, servida do cache quando possível
func (s *Service) ListInvoices(ctx context.Context, query string, page int) (*domain.InvoicePage, error) {
	page, limit, offset := utils.PageWindow(page)
	key := cache.Key(domain.InvoicesView, "query="+query, "page="+strconv.Itoa(page))

	var generation uint64
	if s.viewCache != nil {
		if cached, ok := cache.Get[*domain.InvoicePage](s.viewCache, key); ok {
			return cached, nil
		}
		generation = s.viewCache.Generation(domain.InvoicesView)
	}

	logger := log.ForContext(ctx)

	invoices, err := s.invoiceRepo.ListFilteredInvoices(ctx, query, limit, offset)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar faturas")
		return nil, NewInvoiceError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas no banco de dados")
	}

	count, err := s.invoiceRepo.CountFilteredInvoices(ctx, query)
	if err != nil {
		logger.WithError(err).Error("Erro ao contar faturas")
		return nil, NewInvoiceError(ErrFetchInvoices, apiErrors.ErrDatabaseOperation, "Falha ao contar faturas no banco de dados")
	}

	result := &domain.InvoicePage{
		Invoices:   invoices,
		Page:       page,
		TotalPages: utils.TotalPages(count),
	}

	// Uma mutação durante a leitura torna o resultado velho demais para o cache
	if s.viewCache != nil {
		s.viewCache.SetIfCurrent(domain.InvoicesView, generation, key, result)
	}

	return result, nil
}

func (s *Service) succeeded() *domain.MutationResult {
	s.invalidator.Invalidate(domain.InvoicesView)
	return &domain.MutationResult{RedirectTo: domain.InvoicesView}
}
