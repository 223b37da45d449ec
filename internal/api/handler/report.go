package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wagnerjunior3121/pc-backend/internal/usecases/reporting"
	"github.com/wagnerjunior3121/pc-backend/pkg/apiErrors"
)

// reportOptionsFromRequest lê os filtros de mês e setor da query string.
// Setores podem vir repetidos ou separados por vírgula. Sem mês na query,
// o endpoint assume o mês corrente; o núcleo do relatório não tem default.
func reportOptionsFromRequest(r *http.Request) reporting.ReportOptions {
	query := r.URL.Query()

	var setores []string
	for _, raw := range query["setor"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				setores = append(setores, s)
			}
		}
	}

	month := query.Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	return reporting.ReportOptions{
		SelectedMonth: month,
		SetorFiltro:   setores,
	}
}

func GetConsolidatedReport(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := reportOptionsFromRequest(r)

		html, err := service.BuildConsolidatedHTML(r.Context(), opts)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			logrus.WithError(err).Warn("erro ao enviar relatório HTML")
		}
	}
}

func GetConsolidatedReportPDF(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := reportOptionsFromRequest(r)

		pdf, err := service.BuildConsolidatedPDF(r.Context(), opts)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="relatorio-consolidado.pdf"`)
		if _, err := w.Write(pdf); err != nil {
			logrus.WithError(err).Warn("erro ao enviar relatório PDF")
		}
	}
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrReportNoData, "Nenhuma planilha disponível para o relatório", nil)
	case errors.Is(err, reporting.ErrRenderFailed):
		logrus.WithError(err).Error("falha na renderização do PDF")
		apiErrors.WriteError(w, apiErrors.ErrReportRender, "Erro ao gerar o PDF do relatório", nil)
	case errors.Is(err, reporting.ErrBuildFailed):
		logrus.WithError(err).Error("falha na montagem do relatório")
		apiErrors.WriteError(w, apiErrors.ErrReportBuild, "Erro ao montar o relatório", nil)
	default:
		logrus.WithError(err).Error("erro inesperado no relatório consolidado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar o relatório", nil)
	}
}
