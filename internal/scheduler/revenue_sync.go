package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/infrastructure/repository"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/revenue"
)

// RevenueSyncConfig representa a configuração do agendador de receita diária
type RevenueSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	RetentionDays       int
	SyncEnabled         bool
}

// SyncStatus é o retrato do agendador exposto pela rota de status
type SyncStatus struct {
	Enabled             bool       `json:"enabled"`
	Running             bool       `json:"running"`
	CronSchedule        string     `json:"cron_schedule"`
	LookbackDays        int        `json:"lookback_days"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// RevenueSyncService aquece o cache diário de receita fora do horário de
// pico para as telas de relatório não pagarem a latência do backend
type RevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              RevenueSyncConfig
	appConfig           *config.Config
	fetcher             revenue.Fetcher
	cacheRepo           repository.RevenueCacheRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRevenueSyncService cria uma nova instância do serviço de sincronização de receita
func NewRevenueSyncService(
	fetcher revenue.Fetcher,
	cacheRepo repository.RevenueCacheRepository,
	appConfig *config.Config,
) *RevenueSyncService {
	// Criar a configuração com base na config global
	syncConfig := RevenueSyncConfig{
		CronSchedule:        appConfig.RevenueSync.CronSchedule,
		LookbackDays:        appConfig.RevenueSync.LookbackDays,
		RequestDelaySeconds: appConfig.RevenueSync.RequestDelaySeconds,
		RetentionDays:       appConfig.RevenueSync.RetentionDays,
		SyncEnabled:         appConfig.RevenueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de receita diária carregada")

	return &RevenueSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		fetcher:     fetcher,
		cacheRepo:   cacheRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de receita diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de receita diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRevenue(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de receita diária: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto do servidor for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de receita diária")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado.
// Retorna erro quando já existe uma execução em andamento.
func (s *RevenueSyncService) TriggerManualSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("sincronização de receita já em andamento")
	}
	s.syncMutex.Unlock()

	go s.syncRevenue(ctx)

	return nil
}

// Status devolve o retrato atual do agendador
func (s *RevenueSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:      s.config.SyncEnabled,
		Running:      s.syncRunning,
		CronSchedule: s.config.CronSchedule,
		LookbackDays: s.config.LookbackDays,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}

// syncRevenue percorre a janela de retrovisão dia a dia. A busca pelo
// fetcher já grava no cache; o delay entre chamadas evita rajadas no
// backend hoteleiro.
func (s *RevenueSyncService) syncRevenue(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	dates := s.getDatesToProcess()

	logrus.WithFields(logrus.Fields{
		"days":       len(dates),
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Iniciando sincronização de receita diária")

	for i, date := range dates {
		if ctx.Err() != nil {
			logrus.Info("Sincronização de receita interrompida pelo contexto")
			return
		}

		point := s.fetcher.FetchByDay(ctx, date)

		logrus.WithFields(logrus.Fields{
			"date":          date.Format(time.DateOnly),
			"total_revenue": point.TotalRevenue,
		}).Debug("Receita do dia sincronizada")

		// Espaçar as chamadas, menos após o último dia
		if s.config.RequestDelaySeconds > 0 && i < len(dates)-1 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	s.pruneCache()

	logrus.WithField("days", len(dates)).Info("Sincronização de receita diária concluída")
}

// pruneCache remove os pontos além da janela de retenção
func (s *RevenueSyncService) pruneCache() {
	if s.cacheRepo == nil || s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.cacheRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expurgar o cache de receita diária")
		return
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Cache de receita diária expurgado")
	}
}

// getDatesToProcess monta a janela de retrovisão, do dia atual para trás
func (s *RevenueSyncService) getDatesToProcess() []time.Time {
	days := s.config.LookbackDays
	if days <= 0 {
		days = 1
	}

	dates := make([]time.Time, 0, days)
	today := time.Now()

	for i := 0; i < days; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}

	return dates
}
