package hmsdomain

import "time"

// Booking é uma reserva retornada pelo backend hoteleiro
type Booking struct {
	ID           int    `json:"id"`
	CustomerName string `json:"tenKhachHang"`
	RoomID       int    `json:"phongId"`
	RoomName     string `json:"tenPhong"`
	RoomType     string `json:"tenLoaiPhong,omitempty"`
	CheckIn      string `json:"ngayNhanPhong"`
	CheckOut     string `json:"ngayTraPhong"`
	Status       string `json:"trangThai"`
	TotalAmount  int64  `json:"tongTien"`
}

// CheckInDate interpreta a data de entrada; nil quando ausente ou inválida
func (b Booking) CheckInDate() *time.Time {
	return parseOptionalDate(b.CheckIn)
}

// CheckOutDate interpreta a data de saída; nil quando ausente ou inválida
func (b Booking) CheckOutDate() *time.Time {
	return parseOptionalDate(b.CheckOut)
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range billDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

// Customer é um hóspede cadastrado no backend
type Customer struct {
	ID          int    `json:"id"`
	Name        string `json:"hoTen"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"soDienThoai,omitempty"`
	IdentityNo  string `json:"cmnd,omitempty"`
}
