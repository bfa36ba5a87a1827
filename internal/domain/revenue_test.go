package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRevenue(t *testing.T) {
	tests := []struct {
		name            string
		total           int64
		expectedRoom    int64
		expectedService int64
	}{
		{
			name:            "Divisão exata de 100000",
			total:           100000,
			expectedRoom:    80000,
			expectedService: 20000,
		},
		{
			name:            "Divisão de 50000",
			total:           50000,
			expectedRoom:    40000,
			expectedService: 10000,
		},
		{
			name:            "Valor que não divide exato mantém a soma",
			total:           99999,
			expectedRoom:    79999,
			expectedService: 20000,
		},
		{
			name:            "Total zero",
			total:           0,
			expectedRoom:    0,
			expectedService: 0,
		},
		{
			name:            "Valor pequeno arredonda para o quarto",
			total:           1,
			expectedRoom:    1,
			expectedService: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, service := SplitRevenue(tt.total)

			assert.Equal(t, tt.expectedRoom, room)
			assert.Equal(t, tt.expectedService, service)

			// A soma das partes deve sempre reconstruir o total
			assert.Equal(t, tt.total, room+service)
		})
	}
}

func TestNewRevenuePoint(t *testing.T) {
	point := NewRevenuePoint("2024-05-01", GranularityDay, 80000, 20000)

	assert.Equal(t, "2024-05-01", point.PeriodKey)
	assert.Equal(t, GranularityDay, point.Granularity)
	assert.Equal(t, int64(100000), point.TotalRevenue)
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expectErr bool
	}{
		{name: "Diária", value: "day"},
		{name: "Mensal", value: "month"},
		{name: "Anual", value: "year"},
		{name: "Valor inválido", value: "week", expectErr: true},
		{name: "Vazio", value: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granularity, err := ParseGranularity(tt.value)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, Granularity(tt.value), granularity)
		})
	}
}

func TestRevenuePointPeriodStart(t *testing.T) {
	day := NewRevenuePoint("2024-05-03", GranularityDay, 0, 0)
	month := NewRevenuePoint("2024-05", GranularityMonth, 0, 0)
	year := NewRevenuePoint("2024", GranularityYear, 0, 0)

	assert.Equal(t, "2024-05-03", day.PeriodStart().Format("2006-01-02"))
	assert.Equal(t, "2024-05-01", month.PeriodStart().Format("2006-01-02"))
	assert.Equal(t, "2024-01-01", year.PeriodStart().Format("2006-01-02"))

	// Chave mal formada ordena no zero
	broken := NewRevenuePoint("05/2024", GranularityMonth, 0, 0)
	assert.True(t, broken.PeriodStart().IsZero())
}
