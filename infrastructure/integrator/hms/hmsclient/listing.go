package hmsclient

import (
	"context"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
)

func (c *HMSClient) ListBills(ctx context.Context) ([]hmsdomain.Bill, error) {
	var bills []hmsdomain.Bill
	if err := c.get(ctx, c.listClient, "/hoa-don", nil, &bills); err != nil {
		return nil, err
	}

	return bills, nil
}

func (c *HMSClient) ListBookings(ctx context.Context) ([]hmsdomain.Booking, error) {
	var bookings []hmsdomain.Booking
	if err := c.get(ctx, c.listClient, "/dat-phong", nil, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (c *HMSClient) ListRooms(ctx context.Context) ([]hmsdomain.Room, error) {
	var rooms []hmsdomain.Room
	if err := c.get(ctx, c.listClient, "/phong", nil, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (c *HMSClient) ListRoomStatuses(ctx context.Context) ([]hmsdomain.RoomStatus, error) {
	var statuses []hmsdomain.RoomStatus
	if err := c.get(ctx, c.listClient, "/trang-thai-phong", nil, &statuses); err != nil {
		return nil, err
	}

	return statuses, nil
}

func (c *HMSClient) ListRoomTypes(ctx context.Context) ([]hmsdomain.RoomType, error) {
	var types []hmsdomain.RoomType
	if err := c.get(ctx, c.listClient, "/loai-phong", nil, &types); err != nil {
		return nil, err
	}

	return types, nil
}

func (c *HMSClient) ListCustomers(ctx context.Context) ([]hmsdomain.Customer, error) {
	var customers []hmsdomain.Customer
	if err := c.get(ctx, c.listClient, "/khach-hang", nil, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}
