package domain

import "time"

// BookingConfirmation reúne os dados impressos no comprovante de reserva
type BookingConfirmation struct {
	BookingID    string     `json:"booking_id"`
	CustomerName string     `json:"customer_name"`
	RoomName     string     `json:"room_name"`
	RoomType     string     `json:"room_type"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	TotalAmount  int64      `json:"total_amount"`
}

// NightCount conta as diárias pela diferença de dias de calendário.
// Datas ausentes ou invertidas contam zero diárias.
func (b *BookingConfirmation) NightCount() int {
	if b.CheckIn == nil || b.CheckOut == nil {
		return 0
	}

	in := time.Date(b.CheckIn.Year(), b.CheckIn.Month(), b.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(b.CheckOut.Year(), b.CheckOut.Month(), b.CheckOut.Day(), 0, 0, 0, 0, time.UTC)

	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}
