// Package scheduler contém as rotinas periódicas da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
)

// Cleaner descarta estado ocioso e retorna quantos itens removeu
type Cleaner interface {
	Cleanup(idle time.Duration) int
}

type LimiterCleanupConfig struct {
	CronSchedule string
	IdleTimeout  time.Duration
}

// LimiterCleanupService remove periodicamente os limitadores de login ociosos
type LimiterCleanupService struct {
	scheduler *gocron.Scheduler
	cleaner   Cleaner
	config    LimiterCleanupConfig

	mu         sync.Mutex
	lastRunAt  time.Time
	lastRemove int
}

func NewLimiterCleanupService(cleaner Cleaner, cfg *config.Config) *LimiterCleanupService {
	cleanupConfig := LimiterCleanupConfig{
		CronSchedule: cfg.LoginLimit.CleanupCron,
		IdleTimeout:  cfg.LoginLimit.IdleTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"idle_timeout":  cleanupConfig.IdleTimeout,
	}).Info("Configuração da limpeza dos limitadores de login carregada")

	return &LimiterCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		cleaner:   cleaner,
		config:    cleanupConfig,
	}
}

func (s *LimiterCleanupService) Start(ctx context.Context) error {
	if s.config.CronSchedule == "" {
		logrus.Info("Limpeza dos limitadores de login desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.RunCleanup)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza dos limitadores de login: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza dos limitadores de login")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup executa uma limpeza imediatamente
func (s *LimiterCleanupService) RunCleanup() {
	removed := s.cleaner.Cleanup(s.config.IdleTimeout)

	s.mu.Lock()
	s.lastRunAt = time.Now()
	s.lastRemove = removed
	s.mu.Unlock()

	if removed > 0 {
		logrus.WithField("removed", removed).Debug("Limitadores de login ociosos removidos")
	}
}

// LastRun retorna o horário e o resultado da última limpeza
func (s *LimiterCleanupService) LastRun() (time.Time, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRunAt, s.lastRemove
}
