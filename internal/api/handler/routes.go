package handler

import (
	"net/http"

	"github.com/wagnerjunior3121/pc-backend/internal/api/handler/router"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/asseting"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/authenticating"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/reporting"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/sheeting"
	"github.com/wagnerjunior3121/pc-backend/internal/ws"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
	}
}

func Sheets(service sheeting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sheets",
			Method:  http.MethodPost,
			Handler: UploadSheet(service),
		},
		{
			Path:    "/v1/sheets",
			Method:  http.MethodGet,
			Handler: ListSheets(service),
		},
	}
}

func Assets(service asseting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/assets",
			Method:  http.MethodGet,
			Handler: ListAssets(service),
		},
		{
			Path:    "/v1/assets",
			Method:  http.MethodPost,
			Handler: CreateAsset(service),
		},
		{
			Path:    "/v1/assets/:id",
			Method:  http.MethodPut,
			Handler: UpdateAsset(service),
		},
		{
			Path:    "/v1/assets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAsset(service),
		},
	}
}

func Reports(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/consolidated",
			Method:  http.MethodGet,
			Handler: GetConsolidatedReport(service),
		},
		{
			Path:    "/v1/reports/consolidated.pdf",
			Method:  http.MethodGet,
			Handler: GetConsolidatedReportPDF(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Websocket(hub *ws.Hub) []router.Route {
	return []router.Route{
		{
			Path:    "/ws",
			Method:  http.MethodGet,
			Handler: WebsocketHandler(hub),
		},
	}
}
