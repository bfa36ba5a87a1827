package domain

import "math"

// UnrecognizedLabel agrupa registros cujo código não consta na lista de
// referência do backend
const UnrecognizedLabel = "Không xác định"

// CategoryBucket é uma fatia categórica do inventário (status ou tipo de
// quarto) com contagem e percentual já calculados
type CategoryBucket struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DefaultRoomStatusLabels é a lista usada quando a consulta de status ao
// backend falha
var DefaultRoomStatusLabels = []string{
	"Trống",
	"Đã đặt",
	"Đang sử dụng",
	"Đang dọn dẹp",
	"Bảo trì",
}

// DefaultRoomTypeLabels é a lista usada quando a consulta de tipos ao
// backend falha
var DefaultRoomTypeLabels = []string{
	"Phòng đơn",
	"Phòng đôi",
	"Phòng gia đình",
	"Phòng VIP",
}

// RoomStatusLabels mapeia os códigos de status do backend para os rótulos
// exibidos no painel
var RoomStatusLabels = map[string]string{
	"available":   "Trống",
	"booked":      "Đã đặt",
	"occupied":    "Đang sử dụng",
	"cleaning":    "Đang dọn dẹp",
	"maintenance": "Bảo trì",
}

// Percentage calcula o percentual arredondado de count sobre total.
// Total zero devolve zero para o painel não dividir por zero.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(count) / float64(total) * 100))
}

// DashboardSummary reúne os totais e as fatias categóricas da tela inicial
type DashboardSummary struct {
	TotalRooms     int              `json:"total_rooms"`
	TotalCustomers int              `json:"total_customers"`
	TotalBookings  int              `json:"total_bookings"`
	TotalRevenue   int64            `json:"total_revenue"`
	OccupancyRate  float64          `json:"occupancy_rate"`
	StatusBuckets  []CategoryBucket `json:"status_buckets"`
	TypeBuckets    []CategoryBucket `json:"type_buckets"`
}
