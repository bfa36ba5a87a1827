package hms

import (
	"context"
	"sync"
	"time"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/pkg/log"
)

// FallbackSource responde com um conjunto fixo de dados de demonstração.
// Substitui o antigo catch silencioso com arrays literais espalhados:
// a degradação agora é uma implementação explícita de Integrator.
type FallbackSource struct{}

func NewFallbackSource() *FallbackSource {
	return &FallbackSource{}
}

func (s *FallbackSource) TotalRevenue(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *FallbackSource) RevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
	return &hmsdomain.RevenueSummary{Day: date.Day(), Month: int(date.Month()), Year: date.Year()}, nil
}

func (s *FallbackSource) RevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error) {
	return &hmsdomain.RevenueSummary{Month: month, Year: year}, nil
}

func (s *FallbackSource) RevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error) {
	return &hmsdomain.RevenueSummary{Year: year}, nil
}

func (s *FallbackSource) Bills(ctx context.Context) ([]hmsdomain.Bill, error) {
	return []hmsdomain.Bill{}, nil
}

func (s *FallbackSource) Bookings(ctx context.Context) ([]hmsdomain.Booking, error) {
	return []hmsdomain.Booking{}, nil
}

func (s *FallbackSource) Rooms(ctx context.Context) ([]hmsdomain.Room, error) {
	return []hmsdomain.Room{
		{ID: 1, Name: "P101", Floor: 1, Status: "available", Type: hmsdomain.RoomType{ID: 1, Name: "Phòng đơn", Price: 350000}},
		{ID: 2, Name: "P102", Floor: 1, Status: "occupied", Type: hmsdomain.RoomType{ID: 2, Name: "Phòng đôi", Price: 500000}},
		{ID: 3, Name: "P201", Floor: 2, Status: "booked", Type: hmsdomain.RoomType{ID: 2, Name: "Phòng đôi", Price: 500000}},
		{ID: 4, Name: "P202", Floor: 2, Status: "cleaning", Type: hmsdomain.RoomType{ID: 3, Name: "Phòng gia đình", Price: 800000}},
		{ID: 5, Name: "P301", Floor: 3, Status: "maintenance", Type: hmsdomain.RoomType{ID: 4, Name: "Phòng VIP", Price: 1200000}},
	}, nil
}

func (s *FallbackSource) RoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error) {
	return []hmsdomain.RoomStatus{
		{Code: "available", Name: "Trống"},
		{Code: "booked", Name: "Đã đặt"},
		{Code: "occupied", Name: "Đang sử dụng"},
		{Code: "cleaning", Name: "Đang dọn dẹp"},
		{Code: "maintenance", Name: "Bảo trì"},
	}, nil
}

func (s *FallbackSource) RoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error) {
	return []hmsdomain.RoomType{
		{ID: 1, Name: "Phòng đơn", Price: 350000},
		{ID: 2, Name: "Phòng đôi", Price: 500000},
		{ID: 3, Name: "Phòng gia đình", Price: 800000},
		{ID: 4, Name: "Phòng VIP", Price: 1200000},
	}, nil
}

func (s *FallbackSource) Customers(ctx context.Context) ([]hmsdomain.Customer, error) {
	return []hmsdomain.Customer{}, nil
}

// FailoverSource seleciona entre a fonte remota e a de contingência.
// Depois de um número de falhas consecutivas de listagem, a remota é
// considerada indisponível até o fim do período de resfriamento.
// Consultas pontuais de receita não participam do failover: a camada de
// busca já degrada para pontos zerados.
type FailoverSource struct {
	remote   Integrator
	fallback Integrator

	mu        sync.Mutex
	failures  int
	downUntil time.Time

	threshold int
	coolOff   time.Duration
}

func NewFailoverSource(cfg *config.Config, remote, fallback Integrator) *FailoverSource {
	threshold := cfg.HMS.FailureThreshold
	if threshold <= 0 {
		threshold = 3
	}

	coolOff := time.Duration(cfg.HMS.CoolOffSeconds) * time.Second
	if coolOff <= 0 {
		coolOff = 30 * time.Second
	}

	return &FailoverSource{
		remote:    remote,
		fallback:  fallback,
		threshold: threshold,
		coolOff:   coolOff,
	}
}

// remoteAvailable informa se a fonte remota deve ser tentada
func (s *FailoverSource) remoteAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failures < s.threshold {
		return true
	}

	if time.Now().After(s.downUntil) {
		// Fim do resfriamento: dar nova chance à fonte remota
		s.failures = 0
		return true
	}

	return false
}

func (s *FailoverSource) recordResult(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.failures = 0
		return
	}

	s.failures++
	if s.failures >= s.threshold {
		s.downUntil = time.Now().Add(s.coolOff)
		log.L.WithError(err).WithFields(log.Fields{
			"failures": s.failures,
			"cooloff":  s.coolOff.String(),
		}).Warn("hms: backend indisponível, usando dados de contingência")
	}
}

func failover[T any](s *FailoverSource, ctx context.Context, remote, fallback func(context.Context) (T, error)) (T, error) {
	if s.remoteAvailable() {
		result, err := remote(ctx)
		s.recordResult(err)
		if err == nil {
			return result, nil
		}
	}

	return fallback(ctx)
}

func (s *FailoverSource) TotalRevenue(ctx context.Context) (int64, error) {
	return s.remote.TotalRevenue(ctx)
}

func (s *FailoverSource) RevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
	return s.remote.RevenueByDay(ctx, date)
}

func (s *FailoverSource) RevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error) {
	return s.remote.RevenueByMonth(ctx, month, year)
}

func (s *FailoverSource) RevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error) {
	return s.remote.RevenueByYear(ctx, year)
}

func (s *FailoverSource) Bills(ctx context.Context) ([]hmsdomain.Bill, error) {
	return failover(s, ctx, s.remote.Bills, s.fallback.Bills)
}

func (s *FailoverSource) Bookings(ctx context.Context) ([]hmsdomain.Booking, error) {
	return failover(s, ctx, s.remote.Bookings, s.fallback.Bookings)
}

func (s *FailoverSource) Rooms(ctx context.Context) ([]hmsdomain.Room, error) {
	return failover(s, ctx, s.remote.Rooms, s.fallback.Rooms)
}

func (s *FailoverSource) RoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error) {
	return failover(s, ctx, s.remote.RoomStatuses, s.fallback.RoomStatuses)
}

func (s *FailoverSource) RoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error) {
	return failover(s, ctx, s.remote.RoomTypes, s.fallback.RoomTypes)
}

func (s *FailoverSource) Customers(ctx context.Context) ([]hmsdomain.Customer, error) {
	return failover(s, ctx, s.remote.Customers, s.fallback.Customers)
}
