package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wagnerjunior3121/pc-backend/infrastructure/database/postgres"
	"github.com/wagnerjunior3121/pc-backend/infrastructure/mailer"
	"github.com/wagnerjunior3121/pc-backend/infrastructure/renderer"
	"github.com/wagnerjunior3121/pc-backend/infrastructure/repository"
	"github.com/wagnerjunior3121/pc-backend/internal/api"
	"github.com/wagnerjunior3121/pc-backend/internal/config"
	"github.com/wagnerjunior3121/pc-backend/internal/scheduler"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/asseting"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/authenticating"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/reporting"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/sheeting"
	"github.com/wagnerjunior3121/pc-backend/internal/ws"
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
	sheetRepo := repository.NewUploadedSheetRepository(pgConn)
	assetRepo := repository.NewAssetRepository(pgConn)

	hub := ws.NewHub()

	authenticator := authenticating.NewService(userRepo, cfg)
	sheetService := sheeting.NewService(sheetRepo, hub)
	assetService := asseting.NewService(assetRepo, hub)

	pdfRenderer := renderer.NewChromePDFRenderer()
	reportService := reporting.NewService(sheetRepo, pdfRenderer)

	reportMailer := mailer.NewSendGridMailer(cfg.SendGrid)

	// Agendador do envio mensal do relatório consolidado por e-mail
	reportEmailService := scheduler.NewReportEmailService(reportService, reportMailer, cfg)
	if err := reportEmailService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de e-mail de relatório")
	} else {
		logrus.Info("Agendador de e-mail de relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sheetService,
		assetService,
		reportService,
		reportEmailService,
		hub,
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
