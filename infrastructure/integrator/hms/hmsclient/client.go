package hmsclient

import (
	"context"
	"net/http"
	"time"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/config"
)

// Client é o contrato de baixo nível com o backend hoteleiro
type Client interface {
	GetTotalRevenue(ctx context.Context) (*hmsdomain.RevenueSummary, error)
	GetRevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error)
	GetRevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error)
	GetRevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error)

	ListBills(ctx context.Context) ([]hmsdomain.Bill, error)
	ListBookings(ctx context.Context) ([]hmsdomain.Booking, error)
	ListRooms(ctx context.Context) ([]hmsdomain.Room, error)
	ListRoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error)
	ListRoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error)
	ListCustomers(ctx context.Context) ([]hmsdomain.Customer, error)
}

// HMSClient implementa Client sobre HTTP com timeouts distintos para
// consultas pontuais e listagens em massa.
type HMSClient struct {
	pointClient *http.Client
	listClient  *http.Client
	config      *config.Config
}

func NewClient(cfg *config.Config) Client {
	pointTimeout := time.Duration(cfg.HMS.PointTimeoutSecs) * time.Second
	if pointTimeout <= 0 {
		pointTimeout = 15 * time.Second
	}

	listTimeout := time.Duration(cfg.HMS.ListTimeoutSecs) * time.Second
	if listTimeout <= 0 {
		listTimeout = 20 * time.Second
	}

	return &HMSClient{
		pointClient: &http.Client{Timeout: pointTimeout},
		listClient:  &http.Client{Timeout: listTimeout},
		config:      cfg,
	}
}
