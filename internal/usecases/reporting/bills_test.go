package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBucketBills(t *testing.T) {
	startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Agrega por dia com divisão heurística", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "2024-05-01T10:00:00", TotalAmount: 60000},
			{ID: 2, IssuedAt: "2024-05-01T18:30:00", TotalAmount: 40000},
			{ID: 3, IssuedAt: "2024-05-03", TotalAmount: 50000},
		}

		points := BucketBills(bills, startDate, endDate, domain.GranularityDay)

		assert.Len(t, points, 2)

		assert.Equal(t, "2024-05-01", points[0].PeriodKey)
		assert.Equal(t, int64(100000), points[0].TotalRevenue)
		assert.Equal(t, int64(80000), points[0].RoomRevenue)
		assert.Equal(t, int64(20000), points[0].ServiceRevenue)

		assert.Equal(t, "2024-05-03", points[1].PeriodKey)
		assert.Equal(t, int64(50000), points[1].TotalRevenue)
		assert.Equal(t, int64(40000), points[1].RoomRevenue)
		assert.Equal(t, int64(10000), points[1].ServiceRevenue)
	})

	t.Run("Campos explícitos têm precedência sobre a heurística", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "2024-05-10", TotalAmount: 100000, RoomAmount: int64Ptr(90000), ServiceAmount: int64Ptr(10000)},
		}

		points := BucketBills(bills, startDate, endDate, domain.GranularityDay)

		assert.Len(t, points, 1)
		assert.Equal(t, int64(90000), points[0].RoomRevenue)
		assert.Equal(t, int64(10000), points[0].ServiceRevenue)
	})

	t.Run("Notas nas bordas do intervalo entram no agregado", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "2024-04-30", TotalAmount: 11111},
			{ID: 2, IssuedAt: "2024-05-01", TotalAmount: 10000},
			{ID: 3, IssuedAt: "2024-05-31T23:59:59", TotalAmount: 20000},
			{ID: 4, IssuedAt: "2024-06-01", TotalAmount: 22222},
		}

		points := BucketBills(bills, startDate, endDate, domain.GranularityDay)

		assert.Len(t, points, 2)
		assert.Equal(t, "2024-05-01", points[0].PeriodKey)
		assert.Equal(t, "2024-05-31", points[1].PeriodKey)
	})

	t.Run("Notas sem data válida são descartadas", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "", TotalAmount: 10000},
			{ID: 2, IssuedAt: "31/05/2024", TotalAmount: 10000},
			{ID: 3, IssuedAt: "2024-05-15", TotalAmount: 30000},
		}

		points := BucketBills(bills, startDate, endDate, domain.GranularityDay)

		assert.Len(t, points, 1)
		assert.Equal(t, int64(30000), points[0].TotalRevenue)
	})

	t.Run("Agrega por mês em ordem cronológica", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "2024-06-10", TotalAmount: 20000},
			{ID: 2, IssuedAt: "2024-05-02", TotalAmount: 10000},
			{ID: 3, IssuedAt: "2024-05-20", TotalAmount: 30000},
		}

		points := BucketBills(
			bills,
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			domain.GranularityMonth,
		)

		assert.Len(t, points, 2)
		assert.Equal(t, "2024-05", points[0].PeriodKey)
		assert.Equal(t, int64(40000), points[0].TotalRevenue)
		assert.Equal(t, "2024-06", points[1].PeriodKey)
		assert.Equal(t, int64(20000), points[1].TotalRevenue)
	})

	t.Run("Sem notas no intervalo devolve lista vazia", func(t *testing.T) {
		bills := []hmsdomain.Bill{
			{ID: 1, IssuedAt: "2023-01-01", TotalAmount: 10000},
		}

		points := BucketBills(bills, startDate, endDate, domain.GranularityDay)

		assert.Empty(t, points)
	})
}
