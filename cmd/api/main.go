package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/api"
	"github.com/vfg2006/invoice-dashboard-api/internal/cache"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/scheduler"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/customer"
	"github.com/vfg2006/invoice-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)

	// Cache da listagem de faturas, invalidado a cada mutação
	viewCache := cache.NewViewCache(cfg.InvoiceCache.Size, cfg.InvoiceCache.TTL)

	invoiceService := invoicing.NewService(invoiceRepo, viewCache).(*invoicing.Service).WithCache(viewCache)
	customerService := customer.NewService(customerRepo, invoiceRepo)
	authenticator := authenticating.NewService(userRepo, cfg)

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginLimit.RatePerSecond, cfg.LoginLimit.Burst)

	limiterCleanup := scheduler.NewLimiterCleanupService(loginLimiter, cfg)
	if err := limiterCleanup.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza dos limitadores de login")
	} else {
		logrus.Info("Agendador de limpeza dos limitadores de login iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Invoices:      invoiceService,
		Customers:     customerService,
		Authenticator: authenticator,
		LoginLimiter:  loginLimiter,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
