package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms"
	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/hmsclient"
	"github.com/vfg2006/hotel-manager-api/infrastructure/repository"
	"github.com/vfg2006/hotel-manager-api/internal/api"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/scheduler"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/revenue"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	revenueCacheRepo := repository.NewRevenueCacheRepository(pgConn, time.Duration(cfg.RevenueCache.TTLMinutes)*time.Minute)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Fonte remota com tolerância a falha do backend hoteleiro
	hmsClient := hmsclient.NewClient(cfg)
	remoteSource := hms.New(cfg, hmsClient)
	hmsSource := hms.NewFailoverSource(cfg, remoteSource, hms.NewFallbackSource())

	// Inicializa o buscador de receita com suporte a cache
	revenueService := revenue.NewService(cfg, hmsSource)
	if cfg.RevenueCache.Enabled {
		revenueService = revenueService.WithCache(revenueCacheRepo)
	}

	reportingService := reporting.NewService(cfg, hmsSource, revenueService)
	exportingService := exporting.NewService(cfg)

	// Inicializa o agendador que aquece o cache diário
	revenueSyncService := scheduler.NewRevenueSyncService(
		revenueService,
		revenueCacheRepo,
		cfg,
	)

	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de receita")
	} else {
		logrus.Info("Agendador de sincronização de receita iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		revenueService,
		reportingService,
		exportingService,
		authenticator,
		revenueSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
