package hms

import (
	"context"
	"time"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/hmsclient"
	"github.com/vfg2006/hotel-manager-api/internal/config"
)

// Integrator é a capacidade de fonte de dados do backend hoteleiro,
// consumida pelos casos de uso de relatório. RemoteSource e FallbackSource
// implementam a mesma interface; a seleção fica na FailoverSource.
type Integrator interface {
	TotalRevenue(ctx context.Context) (int64, error)
	RevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error)
	RevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error)
	RevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error)

	Bills(ctx context.Context) ([]hmsdomain.Bill, error)
	Bookings(ctx context.Context) ([]hmsdomain.Booking, error)
	Rooms(ctx context.Context) ([]hmsdomain.Room, error)
	RoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error)
	RoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error)
	Customers(ctx context.Context) ([]hmsdomain.Customer, error)
}

// RemoteSource delega ao cliente HTTP do backend hoteleiro
type RemoteSource struct {
	cfg    *config.Config
	Client hmsclient.Client
}

func New(cfg *config.Config, client hmsclient.Client) *RemoteSource {
	return &RemoteSource{
		cfg:    cfg,
		Client: client,
	}
}

func (s *RemoteSource) TotalRevenue(ctx context.Context) (int64, error) {
	summary, err := s.Client.GetTotalRevenue(ctx)
	if err != nil {
		return 0, err
	}

	return summary.TotalRevenue, nil
}

func (s *RemoteSource) RevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
	return s.Client.GetRevenueByDay(ctx, date)
}

func (s *RemoteSource) RevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error) {
	return s.Client.GetRevenueByMonth(ctx, month, year)
}

func (s *RemoteSource) RevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error) {
	return s.Client.GetRevenueByYear(ctx, year)
}

func (s *RemoteSource) Bills(ctx context.Context) ([]hmsdomain.Bill, error) {
	return s.Client.ListBills(ctx)
}

func (s *RemoteSource) Bookings(ctx context.Context) ([]hmsdomain.Booking, error) {
	return s.Client.ListBookings(ctx)
}

func (s *RemoteSource) Rooms(ctx context.Context) ([]hmsdomain.Room, error) {
	return s.Client.ListRooms(ctx)
}

func (s *RemoteSource) RoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error) {
	return s.Client.ListRoomStatuses(ctx)
}

func (s *RemoteSource) RoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error) {
	return s.Client.ListRoomTypes(ctx)
}

func (s *RemoteSource) Customers(ctx context.Context) ([]hmsdomain.Customer, error) {
	return s.Client.ListCustomers(ctx)
}
