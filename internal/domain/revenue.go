package domain

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Granularity define a resolução temporal de um ponto de receita
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// RoomRevenueShare é a fração da receita atribuída a hospedagem quando o
// backend não informa a divisão quarto/serviço. O restante vai para serviços.
const RoomRevenueShare = 0.80

// ParseGranularity valida a granularidade vinda da query string
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case GranularityDay, GranularityMonth, GranularityYear:
		return Granularity(value), nil
	}

	return "", errors.Errorf("granularidade inválida: %q", value)
}

// RevenuePoint é a receita de um único período, em VNĐ inteiros.
// A chave do período segue a granularidade: YYYY-MM-DD, YYYY-MM ou YYYY.
type RevenuePoint struct {
	PeriodKey      string      `json:"period"`
	Granularity    Granularity `json:"granularity"`
	RoomRevenue    int64       `json:"room_revenue"`
	ServiceRevenue int64       `json:"service_revenue"`
	TotalRevenue   int64       `json:"total_revenue"`
}

func NewRevenuePoint(periodKey string, granularity Granularity, roomRevenue, serviceRevenue int64) *RevenuePoint {
	return &RevenuePoint{
		PeriodKey:      periodKey,
		Granularity:    granularity,
		RoomRevenue:    roomRevenue,
		ServiceRevenue: serviceRevenue,
		TotalRevenue:   roomRevenue + serviceRevenue,
	}
}

// ZeroRevenuePoint é o ponto devolvido quando a consulta do período falhou
func ZeroRevenuePoint(periodKey string, granularity Granularity) *RevenuePoint {
	return &RevenuePoint{
		PeriodKey:   periodKey,
		Granularity: granularity,
	}
}

// SplitRevenue divide um total em quarto/serviço pela heurística 80/20.
// O serviço é calculado por diferença para que room+service == total sempre.
func SplitRevenue(total int64) (room, service int64) {
	room = int64(math.Round(RoomRevenueShare * float64(total)))
	service = total - room
	return room, service
}

// DayKey formata a chave de período diário
func DayKey(date time.Time) string {
	return date.Format(time.DateOnly)
}

// MonthKey formata a chave de período mensal
func MonthKey(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// YearKey formata a chave de período anual
func YearKey(year int) string {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

// PeriodStart devolve o instante de início do período para ordenação.
// Chaves mal formadas ordenam no zero de time.Time.
func (p *RevenuePoint) PeriodStart() time.Time {
	var layout string

	switch p.Granularity {
	case GranularityDay:
		layout = time.DateOnly
	case GranularityMonth:
		layout = "2006-01"
	case GranularityYear:
		layout = "2006"
	default:
		return time.Time{}
	}

	start, err := time.Parse(layout, p.PeriodKey)
	if err != nil {
		return time.Time{}
	}

	return start
}
