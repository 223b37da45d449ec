package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerjunior3121/pc-backend/internal/config"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/reporting"
)

type fakeReportBuilder struct {
	opts  reporting.ReportOptions
	calls int
	err   error
}

func (f *fakeReportBuilder) BuildConsolidatedPDF(_ context.Context, opts reporting.ReportOptions) ([]byte, error) {
	f.calls++
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type fakeMailer struct {
	subject string
	body    string
	pdf     []byte
	calls   int
	err     error
}

func (f *fakeMailer) SendReport(_ context.Context, subject, body string, pdf []byte) error {
	f.calls++
	f.subject = subject
	f.body = body
	f.pdf = pdf
	return f.err
}

func newTestService(builder *fakeReportBuilder, mailer *fakeMailer, cfg config.ReportEmail) *ReportEmailService {
	return &ReportEmailService{
		scheduler: gocron.NewScheduler(time.UTC),
		builder:   builder,
		mailer:    mailer,
		config:    cfg,
	}
}

func TestSendConsolidatedReport(t *testing.T) {
	builder := &fakeReportBuilder{}
	mailer := &fakeMailer{}
	service := newTestService(builder, mailer, config.ReportEmail{
		SelectedMonth: "2024-04",
		SetorFiltro:   []string{"TRIO"},
	})

	err := service.SendConsolidatedReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, builder.calls)
	assert.Equal(t, "2024-04", builder.opts.SelectedMonth)
	assert.Equal(t, []string{"TRIO"}, builder.opts.SetorFiltro)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "Relatório de Indicadores - 2024-04", mailer.subject)
	assert.Contains(t, mailer.body, "2024-04")
	assert.Equal(t, []byte("%PDF-fake"), mailer.pdf)

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_error"])
}

func TestSendConsolidatedReportMesCorrentePorPadrao(t *testing.T) {
	builder := &fakeReportBuilder{}
	mailer := &fakeMailer{}
	service := newTestService(builder, mailer, config.ReportEmail{})

	err := service.SendConsolidatedReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01"), builder.opts.SelectedMonth)
}

func TestSendConsolidatedReportFalhaNaGeracao(t *testing.T) {
	builder := &fakeReportBuilder{err: errors.New("sem dados")}
	mailer := &fakeMailer{}
	service := newTestService(builder, mailer, config.ReportEmail{SelectedMonth: "2024-04"})

	err := service.SendConsolidatedReport(context.Background())
	require.Error(t, err)

	assert.Equal(t, 0, mailer.calls, "falha na geração não dispara e-mail")

	status := service.Status()
	assert.Contains(t, status["last_error"], "sem dados")
}

func TestSendConsolidatedReportExecucaoSimultanea(t *testing.T) {
	builder := &fakeReportBuilder{}
	mailer := &fakeMailer{}
	service := newTestService(builder, mailer, config.ReportEmail{SelectedMonth: "2024-04"})

	// Simula uma execução ainda em andamento.
	service.syncRunning = true

	err := service.SendConsolidatedReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, builder.calls, "execução simultânea é descartada")
}
