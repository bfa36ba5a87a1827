package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"github.com/vfg2006/hotel-manager-api/internal/usecases/revenue"
	"github.com/vfg2006/hotel-manager-api/pkg/log"
	"github.com/vfg2006/hotel-manager-api/pkg/utils"
)

var ErrBookingNotFound = errors.New("reserva não encontrada")

// Aggregator monta os conjuntos de dados prontos para relatório e painel
type Aggregator interface {
	RevenueByPeriod(ctx context.Context, startDate, endDate time.Time, granularity domain.Granularity) ([]*domain.RevenuePoint, error)
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	BookingConfirmation(ctx context.Context, bookingID int) (*domain.BookingConfirmation, error)
}

type Service struct {
	cfg        *config.Config
	hmsService hms.Integrator
	fetcher    revenue.Fetcher
}

func NewService(cfg *config.Config, hmsService hms.Integrator, fetcher revenue.Fetcher) *Service {
	return &Service{
		cfg:        cfg,
		hmsService: hmsService,
		fetcher:    fetcher,
	}
}

// RevenueByPeriod devolve a série de receita do intervalo fechado
// [startDate, endDate]. Os endpoints dedicados de receita são a fonte
// primária; quando não devolvem nenhum período, a série é reconstruída
// agregando as notas de pagamento.
func (s *Service) RevenueByPeriod(ctx context.Context, startDate, endDate time.Time, granularity domain.Granularity) ([]*domain.RevenuePoint, error) {
	if startDate.After(endDate) {
		return nil, errors.New("data inicial posterior à data final")
	}

	points, err := s.fetcher.FetchRange(ctx, startDate, endDate, granularity)
	if err == nil && len(points) > 0 {
		return points, nil
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: consulta de intervalo falhou, agregando notas de pagamento")
	}

	bills, err := s.hmsService.Bills(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar notas de pagamento")
	}

	return BucketBills(bills, startDate, endDate, granularity), nil
}

// Summary monta o resumo do painel. As consultas ao backend correm em
// paralelo e cada ramo degrada para o padrão sem bloquear os demais.
func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	var (
		wg        sync.WaitGroup
		rooms     []hmsdomain.Room
		statuses  []hmsdomain.RoomStatus
		types     []hmsdomain.RoomType
		customers []hmsdomain.Customer
		bookings  []hmsdomain.Booking
		total     int64
	)

	wg.Add(6)

	go func() {
		defer wg.Done()
		var err error
		if rooms, err = s.hmsService.Rooms(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("reporting: falha ao listar quartos para o resumo")
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		if statuses, err = s.hmsService.RoomStatuses(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("reporting: falha ao listar status de quarto, usando rótulos embutidos")
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		if types, err = s.hmsService.RoomTypes(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("reporting: falha ao listar tipos de quarto, usando rótulos embutidos")
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		if customers, err = s.hmsService.Customers(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("reporting: falha ao listar hóspedes para o resumo")
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		if bookings, err = s.hmsService.Bookings(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("reporting: falha ao listar reservas para o resumo")
		}
	}()

	go func() {
		defer wg.Done()
		total = s.fetcher.FetchTotal(ctx)
	}()

	wg.Wait()

	return &domain.DashboardSummary{
		TotalRooms:     len(rooms),
		TotalCustomers: len(customers),
		TotalBookings:  len(bookings),
		TotalRevenue:   total,
		OccupancyRate:  occupancyRate(rooms),
		StatusBuckets:  roomStatusBuckets(rooms, statuses),
		TypeBuckets:    roomTypeBuckets(rooms, types),
	}, nil
}

// BookingConfirmation monta os dados do comprovante da reserva informada
func (s *Service) BookingConfirmation(ctx context.Context, bookingID int) (*domain.BookingConfirmation, error) {
	bookings, err := s.hmsService.Bookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar reservas")
	}

	for _, booking := range bookings {
		if booking.ID != bookingID {
			continue
		}

		confirmation := &domain.BookingConfirmation{
			BookingID:    utils.FormatBookingCode(booking.ID),
			CustomerName: booking.CustomerName,
			RoomName:     booking.RoomName,
			RoomType:     booking.RoomType,
			CheckIn:      booking.CheckInDate(),
			CheckOut:     booking.CheckOutDate(),
			TotalAmount:  booking.TotalAmount,
		}

		if confirmation.RoomType == "" {
			confirmation.RoomType = s.lookupRoomType(ctx, booking.RoomID)
		}

		return confirmation, nil
	}

	return nil, ErrBookingNotFound
}

// lookupRoomType resolve o tipo do quarto quando a reserva veio sem ele.
// Falha aqui não impede o comprovante: o campo sai em branco.
func (s *Service) lookupRoomType(ctx context.Context, roomID int) string {
	rooms, err := s.hmsService.Rooms(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("reporting: falha ao resolver o tipo do quarto da reserva")
		return ""
	}

	for _, room := range rooms {
		if room.ID == roomID {
			return room.Type.Name
		}
	}

	return ""
}

// occupiedStatusCodes são os códigos de status que contam como quarto em uso.
// Código é contrato do backend; o rótulo de exibição pode ser renomeado.
var occupiedStatusCodes = map[string]bool{
	"occupied": true,
	"booked":   true,
}

// occupancyRate é o percentual de quartos em uso sobre o total
func occupancyRate(rooms []hmsdomain.Room) float64 {
	if len(rooms) == 0 {
		return 0
	}

	occupied := 0
	for _, room := range rooms {
		if occupiedStatusCodes[room.Status] {
			occupied++
		}
	}

	return utils.RoundWithTwoDecimalPlace(float64(occupied) / float64(len(rooms)) * 100)
}
