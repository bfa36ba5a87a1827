package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/revenue"
	"github.com/vfg2006/hotel-manager-api/pkg/apiErrors"
	"github.com/vfg2006/hotel-manager-api/pkg/utils"
)

// GetRevenueReport devolve a série de receita do intervalo pedido.
// As duas datas são inclusivas; granularity aceita day, month ou year.
func GetRevenueReport(service reporting.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		granularityParam := query.Get("granularity")
		if granularityParam == "" {
			granularityParam = string(domain.GranularityDay)
		}

		granularity, err := domain.ParseGranularity(granularityParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Granularidade inválida. Valores aceitos: day, month, year", nil)
			return
		}

		startParam := query.Get("start_date")
		endParam := query.Get("end_date")
		if startParam == "" || endParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(startParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if startDate.After(*endDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date posterior a end_date", nil)
			return
		}

		points, err := service.RevenueByPeriod(r.Context(), *startDate, *endDate, granularity)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a receita no backend hoteleiro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTotalRevenue devolve a receita acumulada de todos os tempos
func GetTotalRevenue(fetcher revenue.Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total := fetcher.FetchTotal(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int64{
			"total_revenue": total,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
