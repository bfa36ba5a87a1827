package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/internal/scheduler"
	"github.com/vfg2006/hotel-manager-api/pkg/apiErrors"
	"github.com/vfg2006/hotel-manager-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRevenueSync = "revenue-sync"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RevenueSyncService *scheduler.RevenueSyncService
}

// RunCronJob dispara manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRevenueSync:
			if services.RevenueSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de receita não disponível", nil)
				return
			}

			if err := services.RevenueSyncService.TriggerManualSync(r.Context()); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: revenue-sync", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"revenue-sync": services.RevenueSyncService.Status(),
		}

		logrus.Debug(utils.PrettyJson(status))

		json.NewEncoder(w).Encode(status)
	}
}
