package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
)

func TestRoomStatusBuckets(t *testing.T) {
	statuses := []hmsdomain.RoomStatus{
		{Code: "available", Name: "Trống"},
		{Code: "occupied", Name: "Đang sử dụng"},
		{Code: "cleaning", Name: "Đang dọn dẹp"},
	}

	t.Run("Conta e calcula percentuais sobre a lista de referência", func(t *testing.T) {
		rooms := []hmsdomain.Room{
			{ID: 1, Status: "available"},
			{ID: 2, Status: "available"},
			{ID: 3, Status: "occupied"},
			{ID: 4, Status: "cleaning"},
		}

		buckets := roomStatusBuckets(rooms, statuses)

		assert.Len(t, buckets, 3)
		assert.Equal(t, domain.CategoryBucket{Label: "Trống", Count: 2, Percentage: 50}, buckets[0])
		assert.Equal(t, domain.CategoryBucket{Label: "Đang sử dụng", Count: 1, Percentage: 25}, buckets[1])
		assert.Equal(t, domain.CategoryBucket{Label: "Đang dọn dẹp", Count: 1, Percentage: 25}, buckets[2])

		// A soma das contagens cobre todos os quartos
		total := 0
		for _, bucket := range buckets {
			total += bucket.Count
		}
		assert.Equal(t, len(rooms), total)
	})

	t.Run("Código fora da referência vai para o balde não reconhecido", func(t *testing.T) {
		rooms := []hmsdomain.Room{
			{ID: 1, Status: "available"},
			{ID: 2, Status: "renovating"},
		}

		buckets := roomStatusBuckets(rooms, statuses)

		assert.Len(t, buckets, 4)
		last := buckets[len(buckets)-1]
		assert.Equal(t, domain.UnrecognizedLabel, last.Label)
		assert.Equal(t, 1, last.Count)
	})

	t.Run("Sem balde não reconhecido quando todos os códigos batem", func(t *testing.T) {
		rooms := []hmsdomain.Room{{ID: 1, Status: "occupied"}}

		buckets := roomStatusBuckets(rooms, statuses)

		for _, bucket := range buckets {
			assert.NotEqual(t, domain.UnrecognizedLabel, bucket.Label)
		}
	})

	t.Run("Lista de referência vazia cai nos rótulos embutidos", func(t *testing.T) {
		rooms := []hmsdomain.Room{{ID: 1, Status: "available"}}

		buckets := roomStatusBuckets(rooms, nil)

		assert.Len(t, buckets, len(domain.DefaultRoomStatusLabels))
		assert.Equal(t, "Trống", buckets[0].Label)
		assert.Equal(t, 1, buckets[0].Count)
	})

	t.Run("Sem quartos todos os percentuais são zero", func(t *testing.T) {
		buckets := roomStatusBuckets(nil, statuses)

		for _, bucket := range buckets {
			assert.Zero(t, bucket.Count)
			assert.Zero(t, bucket.Percentage)
		}
	})
}

func TestRoomTypeBuckets(t *testing.T) {
	types := []hmsdomain.RoomType{
		{ID: 1, Name: "Phòng đơn"},
		{ID: 2, Name: "Phòng đôi"},
	}

	rooms := []hmsdomain.Room{
		{ID: 1, Type: hmsdomain.RoomType{ID: 1, Name: "Phòng đơn"}},
		{ID: 2, Type: hmsdomain.RoomType{ID: 1, Name: "Phòng đơn"}},
		{ID: 3, Type: hmsdomain.RoomType{ID: 2, Name: "Phòng đôi"}},
		{ID: 4, Type: hmsdomain.RoomType{}},
	}

	buckets := roomTypeBuckets(rooms, types)

	assert.Len(t, buckets, 3)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, domain.UnrecognizedLabel, buckets[2].Label)
	assert.Equal(t, 1, buckets[2].Count)
}
