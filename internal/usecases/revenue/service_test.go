package revenue

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	hmsmocks "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/mocks"
	repomocks "github.com/vfg2006/hotel-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HMS.MaxConcurrentCalls = 3
	return cfg
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestFetchTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("Retorna a receita acumulada do backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().TotalRevenue(gomock.Any()).Return(int64(12500000), nil)

		service := NewService(testConfig(), mockHMS)

		assert.Equal(t, int64(12500000), service.FetchTotal(ctx))
	})

	t.Run("Falha do backend degrada para zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().TotalRevenue(gomock.Any()).Return(int64(0), errors.New("backend indisponível"))

		service := NewService(testConfig(), mockHMS)

		assert.Equal(t, int64(0), service.FetchTotal(ctx))
	})
}

func TestFetchByDay(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Aplica a divisão heurística quando o backend só informa o total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), date).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 100000,
		}, nil)

		service := NewService(testConfig(), mockHMS)

		point := service.FetchByDay(ctx, date)

		assert.Equal(t, "2024-05-10", point.PeriodKey)
		assert.Equal(t, int64(80000), point.RoomRevenue)
		assert.Equal(t, int64(20000), point.ServiceRevenue)
		assert.Equal(t, int64(100000), point.TotalRevenue)
	})

	t.Run("Valores explícitos do backend têm precedência sobre a divisão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), date).Return(&hmsdomain.RevenueSummary{
			TotalRevenue:   100000,
			RoomRevenue:    int64Ptr(70000),
			ServiceRevenue: int64Ptr(30000),
		}, nil)

		service := NewService(testConfig(), mockHMS)

		point := service.FetchByDay(ctx, date)

		assert.Equal(t, int64(70000), point.RoomRevenue)
		assert.Equal(t, int64(30000), point.ServiceRevenue)
	})

	t.Run("Falha do backend retorna ponto zerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), date).Return(nil, errors.New("timeout"))

		service := NewService(testConfig(), mockHMS)

		point := service.FetchByDay(ctx, date)

		assert.NotNil(t, point)
		assert.Equal(t, "2024-05-10", point.PeriodKey)
		assert.Zero(t, point.TotalRevenue)
	})

	t.Run("Cache quente responde sem consultar o backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cached := domain.NewRevenuePoint("2024-05-10", domain.GranularityDay, 80000, 20000)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDate(date).Return(cached, nil)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		point := service.FetchByDay(ctx, date)

		assert.Equal(t, cached, point)
	})

	t.Run("Cache frio busca do backend e grava o ponto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), date).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 100000,
		}, nil)

		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDate(date).Return(nil, nil)
		mockCache.EXPECT().SaveOrUpdate(date, gomock.Any()).Return(nil)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		point := service.FetchByDay(ctx, date)

		assert.Equal(t, int64(100000), point.TotalRevenue)
	})

	t.Run("Falha do cache não impede a busca na API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), date).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 100000,
		}, nil)

		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDate(date).Return(nil, errors.New("conexão recusada"))
		mockCache.EXPECT().SaveOrUpdate(date, gomock.Any()).Return(nil)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		point := service.FetchByDay(ctx, date)

		assert.Equal(t, int64(100000), point.TotalRevenue)
	})
}

func TestFetchByMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("Monta o ponto mensal com a chave do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByMonth(gomock.Any(), 5, 2024).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 3000000,
		}, nil)

		service := NewService(testConfig(), mockHMS)

		point := service.FetchByMonth(ctx, 5, 2024)

		assert.Equal(t, "2024-05", point.PeriodKey)
		assert.Equal(t, domain.GranularityMonth, point.Granularity)
		assert.Equal(t, int64(3000000), point.TotalRevenue)
	})

	t.Run("Falha retorna ponto mensal zerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByMonth(gomock.Any(), 5, 2024).Return(nil, errors.New("timeout"))

		service := NewService(testConfig(), mockHMS)

		point := service.FetchByMonth(ctx, 5, 2024)

		assert.Equal(t, "2024-05", point.PeriodKey)
		assert.Zero(t, point.TotalRevenue)
	})
}

func TestFetchRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Série diária sai ordenada pelo início do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
				return &hmsdomain.RevenueSummary{TotalRevenue: int64(date.Day()) * 10000}, nil
			},
		).Times(5)

		service := NewService(testConfig(), mockHMS)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, points, 5)

		for i, point := range points {
			assert.Equal(t, startDate.AddDate(0, 0, i).Format(time.DateOnly), point.PeriodKey)
			assert.Equal(t, int64(i+1)*10000, point.TotalRevenue)
		}
	})

	t.Run("Períodos com falha são omitidos do resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
				if date.Day() == 2 {
					return nil, errors.New("timeout")
				}
				return &hmsdomain.RevenueSummary{TotalRevenue: 50000}, nil
			},
		).Times(3)

		service := NewService(testConfig(), mockHMS)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, points, 2)
		assert.Equal(t, "2024-05-01", points[0].PeriodKey)
		assert.Equal(t, "2024-05-03", points[1].PeriodKey)
	})

	t.Run("Série mensal cobre os meses sobrepostos ao intervalo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByMonth(gomock.Any(), 11, 2024).Return(&hmsdomain.RevenueSummary{TotalRevenue: 1}, nil)
		mockHMS.EXPECT().RevenueByMonth(gomock.Any(), 12, 2024).Return(&hmsdomain.RevenueSummary{TotalRevenue: 2}, nil)
		mockHMS.EXPECT().RevenueByMonth(gomock.Any(), 1, 2025).Return(&hmsdomain.RevenueSummary{TotalRevenue: 3}, nil)

		service := NewService(testConfig(), mockHMS)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityMonth)

		assert.NoError(t, err)
		assert.Len(t, points, 3)
		assert.Equal(t, "2024-11", points[0].PeriodKey)
		assert.Equal(t, "2024-12", points[1].PeriodKey)
		assert.Equal(t, "2025-01", points[2].PeriodKey)
	})

	t.Run("Série anual cobre os anos do intervalo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByYear(gomock.Any(), 2023).Return(&hmsdomain.RevenueSummary{TotalRevenue: 10}, nil)
		mockHMS.EXPECT().RevenueByYear(gomock.Any(), 2024).Return(&hmsdomain.RevenueSummary{TotalRevenue: 20}, nil)

		service := NewService(testConfig(), mockHMS)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityYear)

		assert.NoError(t, err)
		assert.Len(t, points, 2)
		assert.Equal(t, "2023", points[0].PeriodKey)
		assert.Equal(t, "2024", points[1].PeriodKey)
	})

	t.Run("Cache do intervalo é lido em uma consulta e só as datas ausentes vão à API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		missingDate := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDateRange(startDate, endDate).Return([]*domain.RevenuePoint{
			domain.NewRevenuePoint("2024-05-01", domain.GranularityDay, 8000, 2000),
			domain.NewRevenuePoint("2024-05-03", domain.GranularityDay, 24000, 6000),
		}, nil)
		mockCache.EXPECT().SaveOrUpdate(missingDate, gomock.Any()).Return(nil)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), missingDate).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 20000,
		}, nil)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, points, 3)
		assert.Equal(t, "2024-05-01", points[0].PeriodKey)
		assert.Equal(t, "2024-05-02", points[1].PeriodKey)
		assert.Equal(t, "2024-05-03", points[2].PeriodKey)
		assert.Equal(t, int64(20000), points[1].TotalRevenue)
	})

	t.Run("Intervalo todo em cache não toca na API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDateRange(startDate, endDate).Return([]*domain.RevenuePoint{
			domain.NewRevenuePoint("2024-05-02", domain.GranularityDay, 16000, 4000),
			domain.NewRevenuePoint("2024-05-01", domain.GranularityDay, 8000, 2000),
		}, nil)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, points, 2)
		assert.Equal(t, "2024-05-01", points[0].PeriodKey)
		assert.Equal(t, "2024-05-02", points[1].PeriodKey)
	})

	t.Run("Falha do cache do intervalo busca tudo da API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

		mockCache := repomocks.NewMockRevenueCacheRepository(ctrl)
		mockCache.EXPECT().GetByDateRange(startDate, endDate).Return(nil, errors.New("conexão recusada"))
		mockCache.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		mockHMS.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(&hmsdomain.RevenueSummary{
			TotalRevenue: 50000,
		}, nil).Times(2)

		service := NewService(testConfig(), mockHMS).WithCache(mockCache)

		points, err := service.FetchRange(ctx, startDate, endDate, domain.GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, points, 2)
	})

	t.Run("Intervalo invertido produz série vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHMS := hmsmocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockHMS)

		points, err := service.FetchRange(ctx,
			time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			domain.GranularityDay,
		)

		assert.NoError(t, err)
		assert.Empty(t, points)
	})
}
