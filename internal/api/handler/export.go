package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/hotel-manager-api/pkg/apiErrors"
)

// ExportReport recebe o dataset projetável e devolve o arquivo gerado
// como download
func ExportReport(exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req exporting.Request

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		file, err := exporter.Export(r.Context(), req)
		if err != nil {
			handleExportError(w, err)
			return
		}

		writeFile(w, file)
	}
}

// GetBookingConfirmation gera o comprovante em PDF da reserva informada
func GetBookingConfirmation(aggregator reporting.Aggregator, exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")

		bookingID, err := strconv.Atoi(idParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de reserva inválido", nil)
			return
		}

		confirmation, err := aggregator.BookingConfirmation(r.Context(), bookingID)
		if err != nil {
			if errors.Is(err, reporting.ErrBookingNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Reserva não encontrada", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a reserva no backend hoteleiro", nil)
			return
		}

		file, err := exporter.BookingConfirmationPDF(r.Context(), confirmation)
		if err != nil {
			handleExportError(w, err)
			return
		}

		writeFile(w, file)
	}
}

// handleExportError distingue erro de dados, de formato e do gerador
func handleExportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exporting.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrExportNoData, "Não há dados para exportar", nil)

	case errors.Is(err, exporting.ErrUnknownFormat):
		apiErrors.WriteError(w, apiErrors.ErrExportUnknownFormat, "Formato de exportação desconhecido. Valores aceitos: excel, csv, pdf", nil)

	case errors.Is(err, exporting.ErrGeneration):
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExportGeneration, "Erro ao gerar o arquivo de exportação", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao exportar relatório", nil)
	}
}

func writeFile(w http.ResponseWriter, file *exporting.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))

	if _, err := w.Write(file.Content); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar arquivo de exportação")
	}
}
