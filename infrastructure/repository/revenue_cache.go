package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/hotel-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
)

const revenueCacheTable = "daily_revenue_cache rc"

// RevenueCacheRepository é o cache explícito e injetável de pontos diários de
// receita. Dias encerrados são imutáveis; apenas o dia corrente expira pelo TTL.
type RevenueCacheRepository interface {
	GetByDate(date time.Time) (*domain.RevenuePoint, error)
	GetByDateRange(startDate, endDate time.Time) ([]*domain.RevenuePoint, error)
	SaveOrUpdate(date time.Time, point *domain.RevenuePoint) error
	DeleteOlderThan(days int) (int64, error)
}

type revenueCacheRepository struct {
	conn *postgres.Connection
	ttl  time.Duration
}

func NewRevenueCacheRepository(conn *postgres.Connection, ttl time.Duration) RevenueCacheRepository {
	return &revenueCacheRepository{
		conn: conn,
		ttl:  ttl,
	}
}

// GetByDate retorna o ponto cacheado para a data, ou nil quando ausente ou
// expirado. Expiração só se aplica ao dia corrente.
func (r *revenueCacheRepository) GetByDate(date time.Time) (*domain.RevenuePoint, error) {
	builder := squirrel.
		Select("rc.date, rc.room_revenue, rc.service_revenue, rc.total_revenue").
		From(revenueCacheTable).
		Where(squirrel.Eq{"rc.date": date.Format(time.DateOnly)})

	if isToday(date) {
		cutoff := time.Now().Add(-r.ttl)
		builder = builder.Where(squirrel.GtOrEq{"rc.fetched_at": cutoff})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	point, err := scanRevenuePoint(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ponto de receita: %w", err)
	}

	return point, nil
}

// GetByDateRange retorna os pontos cacheados no intervalo fechado, em ordem
// ascendente de data. Pontos expirados do dia corrente são omitidos.
func (r *revenueCacheRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.RevenuePoint, error) {
	builder := squirrel.
		Select("rc.date, rc.room_revenue, rc.service_revenue, rc.total_revenue").
		From(revenueCacheTable).
		Where(squirrel.GtOrEq{"rc.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rc.date": endDate.Format(time.DateOnly)}).
		OrderBy("rc.date ASC")

	if !endDate.Before(startOfToday()) {
		cutoff := time.Now().Add(-r.ttl)
		builder = builder.Where(squirrel.Or{
			squirrel.Lt{"rc.date": time.Now().Format(time.DateOnly)},
			squirrel.GtOrEq{"rc.fetched_at": cutoff},
		})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.RevenuePoint, 0)
	for rows.Next() {
		point, err := scanRevenuePoint(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pontos de receita: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *revenueCacheRepository) SaveOrUpdate(date time.Time, point *domain.RevenuePoint) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("daily_revenue_cache").
		Columns("date", "room_revenue", "service_revenue", "total_revenue", "fetched_at").
		Values(
			date.Format(time.DateOnly),
			point.RoomRevenue,
			point.ServiceRevenue,
			point.TotalRevenue,
			time.Now(),
		).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			room_revenue = EXCLUDED.room_revenue,
			service_revenue = EXCLUDED.service_revenue,
			total_revenue = EXCLUDED.total_revenue,
			fetched_at = EXCLUDED.fetched_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar ponto de receita: %w", err)
	}

	return nil
}

// DeleteOlderThan remove pontos mais antigos que o número de dias informado.
// É a invalidação explícita usada pela rotina de retenção.
func (r *revenueCacheRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.StatementBuilder.
		Delete("daily_revenue_cache").
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover pontos antigos: %w", err)
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevenuePoint(row rowScanner) (*domain.RevenuePoint, error) {
	var (
		date                 time.Time
		room, service, total int64
	)

	if err := row.Scan(&date, &room, &service, &total); err != nil {
		return nil, err
	}

	return &domain.RevenuePoint{
		PeriodKey:      domain.DayKey(date),
		Granularity:    domain.GranularityDay,
		RoomRevenue:    room,
		ServiceRevenue: service,
		TotalRevenue:   total,
	}, nil
}

func isToday(date time.Time) bool {
	now := time.Now()
	return date.Year() == now.Year() && date.YearDay() == now.YearDay()
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
