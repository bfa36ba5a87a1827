package reporting

import (
	"sort"
	"time"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
)

// BucketBills agrega notas de pagamento em pontos de receita por período.
// O filtro de datas é fechado nas duas pontas: notas emitidas exatamente em
// startDate ou endDate entram no agregado. Notas sem data válida são
// descartadas. A divisão quarto/serviço é feita nota a nota, usando os
// campos explícitos quando presentes.
func BucketBills(bills []hmsdomain.Bill, startDate, endDate time.Time, granularity domain.Granularity) []*domain.RevenuePoint {
	type accumulator struct {
		room    int64
		service int64
	}

	start := truncateDay(startDate)
	end := truncateDay(endDate)

	buckets := make(map[string]*accumulator)

	for _, bill := range bills {
		issuedAt, err := bill.Date()
		if err != nil {
			continue
		}

		day := truncateDay(issuedAt)
		if day.Before(start) || day.After(end) {
			continue
		}

		var key string
		switch granularity {
		case domain.GranularityMonth:
			key = domain.MonthKey(int(day.Month()), day.Year())
		case domain.GranularityYear:
			key = domain.YearKey(day.Year())
		default:
			key = domain.DayKey(day)
		}

		room, service := splitBill(bill)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &accumulator{}
			buckets[key] = bucket
		}

		bucket.room += room
		bucket.service += service
	}

	points := make([]*domain.RevenuePoint, 0, len(buckets))
	for key, bucket := range buckets {
		points = append(points, domain.NewRevenuePoint(key, granularity, bucket.room, bucket.service))
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].PeriodStart().Before(points[j].PeriodStart())
	})

	return points
}

// splitBill divide o valor de uma nota em quarto/serviço. A heurística só
// entra quando o backend não informou os dois campos explícitos.
func splitBill(bill hmsdomain.Bill) (room, service int64) {
	if bill.RoomAmount != nil && bill.ServiceAmount != nil {
		return *bill.RoomAmount, *bill.ServiceAmount
	}

	return domain.SplitRevenue(bill.TotalAmount)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
