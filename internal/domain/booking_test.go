package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBookingConfirmationNightCount(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		expected int
	}{
		{
			name:     "Duas diárias",
			checkIn:  timePtr(time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)),
			checkOut: timePtr(time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)),
			expected: 2,
		},
		{
			name:     "Entrada e saída no mesmo dia",
			checkIn:  timePtr(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
			checkOut: timePtr(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)),
			expected: 0,
		},
		{
			name:     "Horas não contam, só dias de calendário",
			checkIn:  timePtr(time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)),
			checkOut: timePtr(time.Date(2024, 5, 2, 0, 1, 0, 0, time.UTC)),
			expected: 1,
		},
		{
			name:     "Sem data de entrada",
			checkIn:  nil,
			checkOut: timePtr(time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)),
			expected: 0,
		},
		{
			name:     "Sem data de saída",
			checkIn:  timePtr(time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)),
			checkOut: nil,
			expected: 0,
		},
		{
			name:     "Datas invertidas contam zero",
			checkIn:  timePtr(time.Date(2024, 5, 5, 14, 0, 0, 0, time.UTC)),
			checkOut: timePtr(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmation := &BookingConfirmation{
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			}

			assert.Equal(t, tt.expected, confirmation.NightCount())
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50, Percentage(5, 10))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 0, Percentage(0, 10))

	// Total zero não divide
	assert.Equal(t, 0, Percentage(5, 0))
}
