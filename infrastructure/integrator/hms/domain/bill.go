package hmsdomain

import (
	"fmt"
	"time"
)

// Bill é uma nota de pagamento retornada pelo backend hoteleiro.
// Os campos seguem os nomes do contrato JSON do backend (vietnamita).
type Bill struct {
	ID            int    `json:"id"`
	BookingID     int    `json:"datPhongId"`
	IssuedAt      string `json:"ngayTao"`
	TotalAmount   int64  `json:"tongTien"`
	RoomAmount    *int64 `json:"tienPhong,omitempty"`
	ServiceAmount *int64 `json:"tienDichVu,omitempty"`
	PaymentMethod string `json:"hinhThucThanhToan,omitempty"`
}

// billDateLayouts são os formatos de data observados nas respostas do backend
var billDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Date interpreta a data de emissão da nota
func (b Bill) Date() (time.Time, error) {
	for _, layout := range billDateLayouts {
		if t, err := time.Parse(layout, b.IssuedAt); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("data de emissão inválida: %q", b.IssuedAt)
}

// RevenueSummary é a resposta dos endpoints dedicados de receita.
// RoomRevenue/ServiceRevenue são opcionais: versões antigas do backend
// informam apenas o total.
type RevenueSummary struct {
	TotalRevenue   int64  `json:"tongDoanhThu"`
	RoomRevenue    *int64 `json:"doanhThuPhong,omitempty"`
	ServiceRevenue *int64 `json:"doanhThuDichVu,omitempty"`
	Day            int    `json:"ngay,omitempty"`
	Month          int    `json:"thang,omitempty"`
	Year           int    `json:"nam,omitempty"`
}
