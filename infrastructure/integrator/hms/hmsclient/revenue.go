package hmsclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
)

func (c *HMSClient) GetTotalRevenue(ctx context.Context) (*hmsdomain.RevenueSummary, error) {
	var summary hmsdomain.RevenueSummary
	if err := c.get(ctx, c.pointClient, "/doanh-thu/tong", nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *HMSClient) GetRevenueByDay(ctx context.Context, date time.Time) (*hmsdomain.RevenueSummary, error) {
	query := url.Values{}
	query.Set("ngay", date.Format(time.DateOnly))

	var summary hmsdomain.RevenueSummary
	if err := c.get(ctx, c.pointClient, "/doanh-thu/ngay", query, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *HMSClient) GetRevenueByMonth(ctx context.Context, month, year int) (*hmsdomain.RevenueSummary, error) {
	query := url.Values{}
	query.Set("thang", strconv.Itoa(month))
	query.Set("nam", strconv.Itoa(year))

	var summary hmsdomain.RevenueSummary
	if err := c.get(ctx, c.pointClient, "/doanh-thu/thang", query, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *HMSClient) GetRevenueByYear(ctx context.Context, year int) (*hmsdomain.RevenueSummary, error) {
	query := url.Values{}
	query.Set("nam", strconv.Itoa(year))

	var summary hmsdomain.RevenueSummary
	if err := c.get(ctx, c.pointClient, "/doanh-thu/nam", query, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
