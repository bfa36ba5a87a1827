package hms

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/mocks"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"go.uber.org/mock/gomock"
)

func failoverConfig(threshold, coolOffSeconds int) *config.Config {
	cfg := &config.Config{}
	cfg.HMS.FailureThreshold = threshold
	cfg.HMS.CoolOffSeconds = coolOffSeconds
	return cfg
}

func TestFailoverSource(t *testing.T) {
	ctx := context.Background()
	backendDown := errors.New("backend indisponível")

	t.Run("Remota saudável responde sem tocar na contingência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		remote := mocks.NewMockIntegrator(ctrl)
		remote.EXPECT().Rooms(gomock.Any()).Return([]hmsdomain.Room{{ID: 1}}, nil)

		source := NewFailoverSource(failoverConfig(3, 30), remote, NewFallbackSource())

		rooms, err := source.Rooms(ctx)

		assert.NoError(t, err)
		assert.Len(t, rooms, 1)
	})

	t.Run("Falha isolada cai na contingência sem abrir o circuito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		remote := mocks.NewMockIntegrator(ctrl)
		remote.EXPECT().RoomStatuses(gomock.Any()).Return(nil, backendDown)
		remote.EXPECT().RoomStatuses(gomock.Any()).Return([]hmsdomain.RoomStatus{{Code: "available"}}, nil)

		source := NewFailoverSource(failoverConfig(3, 30), remote, NewFallbackSource())

		// Primeira chamada degrada para os rótulos de contingência
		statuses, err := source.RoomStatuses(ctx)
		assert.NoError(t, err)
		assert.Len(t, statuses, 5)

		// Remota volta e é consultada de novo
		statuses, err = source.RoomStatuses(ctx)
		assert.NoError(t, err)
		assert.Len(t, statuses, 1)
	})

	t.Run("Falhas consecutivas abrem o circuito até o resfriamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		remote := mocks.NewMockIntegrator(ctrl)
		remote.EXPECT().Rooms(gomock.Any()).Return(nil, backendDown).Times(2)

		source := NewFailoverSource(failoverConfig(2, 60), remote, NewFallbackSource())

		source.Rooms(ctx)
		source.Rooms(ctx)

		// Circuito aberto: a remota não recebe mais chamadas
		rooms, err := source.Rooms(ctx)

		assert.NoError(t, err)
		assert.Len(t, rooms, 5)
	})

	t.Run("Fim do resfriamento dá nova chance à remota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		remote := mocks.NewMockIntegrator(ctrl)
		remote.EXPECT().Rooms(gomock.Any()).Return(nil, backendDown).Times(2)
		remote.EXPECT().Rooms(gomock.Any()).Return([]hmsdomain.Room{{ID: 9}}, nil)

		source := NewFailoverSource(failoverConfig(2, 60), remote, NewFallbackSource())

		source.Rooms(ctx)
		source.Rooms(ctx)

		// Simula o fim do período de resfriamento
		source.mu.Lock()
		source.downUntil = time.Now().Add(-time.Second)
		source.mu.Unlock()

		rooms, err := source.Rooms(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 9, rooms[0].ID)
	})

	t.Run("Consultas pontuais de receita não participam do failover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		remote := mocks.NewMockIntegrator(ctrl)
		remote.EXPECT().TotalRevenue(gomock.Any()).Return(int64(0), backendDown)

		source := NewFailoverSource(failoverConfig(2, 60), remote, NewFallbackSource())

		_, err := source.TotalRevenue(ctx)

		assert.Error(t, err)
	})
}

func TestFallbackSource(t *testing.T) {
	ctx := context.Background()
	source := NewFallbackSource()

	t.Run("Listas de referência cobrem os rótulos conhecidos", func(t *testing.T) {
		statuses, err := source.RoomStatuses(ctx)

		assert.NoError(t, err)
		assert.Len(t, statuses, 5)

		types, err := source.RoomTypes(ctx)

		assert.NoError(t, err)
		assert.Len(t, types, 4)
	})

	t.Run("Coleções transacionais vêm vazias, nunca nulas", func(t *testing.T) {
		bills, err := source.Bills(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, bills)
		assert.Empty(t, bills)

		bookings, err := source.Bookings(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})
}
