package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/wagnerjunior3121/pc-backend/internal/scheduler"
	"github.com/wagnerjunior3121/pc-backend/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que pode ser disparada manualmente
const (
	CronJobTypeReportEmail = "report-email"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	ReportEmailService *scheduler.ReportEmailService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportEmail:
			if services.ReportEmailService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de envio de relatório não disponível", nil)
				return
			}
			// O contexto da requisição morre na resposta; a execução
			// manual roda com contexto próprio.
			go func() {
				if err := services.ReportEmailService.SendConsolidatedReport(context.Background()); err != nil {
					logrus.WithError(err).Error("Erro na execução manual do envio de relatório")
				}
			}()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Cron job disparada",
			"type":    cronType,
		})
	}
}

// GetCronStatus devolve o estado da última execução de cada cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{}
		if services.ReportEmailService != nil {
			status[CronJobTypeReportEmail] = services.ReportEmailService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
