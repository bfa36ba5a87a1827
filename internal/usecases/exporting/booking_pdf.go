package exporting

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"github.com/vfg2006/hotel-manager-api/pkg/log"
	"github.com/vfg2006/hotel-manager-api/pkg/utils"
)

// BookingConfirmationPDF gera o comprovante de reserva de registro único:
// cabeçalho do hotel, campos rotulados e rodapé. Layout fixo, sem tabela.
func (s *Service) BookingConfirmationPDF(ctx context.Context, confirmation *domain.BookingConfirmation) (*File, error) {
	if confirmation == nil {
		return nil, ErrNoData
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	// Cabeçalho do hotel
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(usableWidth, 9, Transliterate(s.cfg.Hotel.Name), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(usableWidth, 5, Transliterate(s.cfg.Hotel.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(usableWidth, 5, "DT: "+s.cfg.Hotel.Phone, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(usableWidth, 8, "PHIEU XAC NHAN DAT PHONG", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	checkIn := formatConfirmationDate(confirmation.CheckIn)
	checkOut := formatConfirmationDate(confirmation.CheckOut)

	fields := []struct {
		label string
		value string
	}{
		{"Ma dat phong", confirmation.BookingID},
		{"Khach hang", Transliterate(confirmation.CustomerName)},
		{"Phong", Transliterate(confirmation.RoomName)},
		{"Loai phong", Transliterate(confirmation.RoomType)},
		{"Ngay nhan phong", checkIn},
		{"Ngay tra phong", checkOut},
		{"So dem", fmt.Sprintf("%d", confirmation.NightCount())},
		{"Tong tien", Transliterate(utils.FormatVND(confirmation.TotalAmount))},
	}

	labelWidth := usableWidth * 0.35
	valueWidth := usableWidth - labelWidth

	for _, field := range fields {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, 9, field.label, "1", 0, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(valueWidth, 9, field.value, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(usableWidth, 5, "Cam on quy khach da lua chon khach san cua chung toi.", "", 1, "C", false, 0, "")
	pdf.CellFormat(usableWidth, 5, "Ngay in: "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errors.Wrapf(ErrGeneration, "pdf: %v", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"booking": confirmation.BookingID,
	}).Info("exporting: comprovante de reserva gerado")

	return &File{
		Name:        fmt.Sprintf("xac-nhan-%s.pdf", confirmation.BookingID),
		ContentType: "application/pdf",
		Content:     buffer.Bytes(),
	}, nil
}

// formatConfirmationDate formata datas do comprovante; ausente sai como traço
func formatConfirmationDate(date *time.Time) string {
	if date == nil {
		return "-"
	}

	return date.Format("02/01/2006")
}
