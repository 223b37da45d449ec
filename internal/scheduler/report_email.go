// Package scheduler contém os serviços de agendamento do envio periódico
// de relatórios.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/wagnerjunior3121/pc-backend/internal/config"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/reporting"
)

// ReportBuilder gera o PDF do relatório consolidado.
type ReportBuilder interface {
	BuildConsolidatedPDF(ctx context.Context, opts reporting.ReportOptions) ([]byte, error)
}

// Mailer envia o relatório para os destinatários configurados.
type Mailer interface {
	SendReport(ctx context.Context, subject, body string, pdf []byte) error
}

type ReportEmailService struct {
	scheduler *gocron.Scheduler
	builder   ReportBuilder
	mailer    Mailer
	config    config.ReportEmail

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewReportEmailService(
	builder ReportBuilder,
	mailer Mailer,
	cfg *config.Config,
) *ReportEmailService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ReportEmail.CronSchedule,
	}).Info("Configuração do agendador de e-mail de relatório carregada")

	return &ReportEmailService{
		scheduler: scheduler,
		builder:   builder,
		mailer:    mailer,
		config:    cfg.ReportEmail,
	}
}

func (s *ReportEmailService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de envio de relatório por e-mail desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de envio do relatório consolidado")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SendConsolidatedReport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no envio agendado do relatório consolidado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio do relatório consolidado: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de envio do relatório consolidado")
		s.scheduler.Stop()
	}()

	return nil
}

// SendConsolidatedReport gera e envia o relatório do mês configurado, ou
// do mês corrente quando nenhum foi fixado. Execuções simultâneas são
// descartadas.
func (s *ReportEmailService) SendConsolidatedReport(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Envio de relatório já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	selectedMonth := s.config.SelectedMonth
	if selectedMonth == "" {
		selectedMonth = time.Now().Format("2006-01")
	}

	logrus.WithField("mes", selectedMonth).Info("Gerando relatório consolidado para envio por e-mail")

	pdf, err := s.builder.BuildConsolidatedPDF(ctx, reporting.ReportOptions{
		SelectedMonth: selectedMonth,
		SetorFiltro:   s.config.SetorFiltro,
	})
	if err != nil {
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao gerar o relatório consolidado: %w", err)
	}

	subject := fmt.Sprintf("Relatório de Indicadores - %s", selectedMonth)
	body := fmt.Sprintf(
		"<p>Segue em anexo o relatório consolidado de indicadores de manutenção do mês %s.</p>",
		selectedMonth,
	)

	if err := s.mailer.SendReport(ctx, subject, body, pdf); err != nil {
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao enviar o relatório por e-mail: %w", err)
	}

	s.lastSyncError = ""
	logrus.Info("Relatório consolidado enviado por e-mail com sucesso")

	return nil
}

// Status expõe o estado da última execução para o endpoint de diagnóstico.
func (s *ReportEmailService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]interface{}{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"last_error":        s.lastSyncError,
	}
}
