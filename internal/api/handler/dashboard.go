package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/hotel-manager-api/pkg/apiErrors"
)

// GetDashboardSummary devolve os totais e as fatias do painel inicial
func GetDashboardSummary(service reporting.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao montar o resumo do painel", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
