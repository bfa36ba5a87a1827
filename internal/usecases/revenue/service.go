package revenue

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms"
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/infrastructure/repository"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"github.com/vfg2006/hotel-manager-api/pkg/log"
)

// Fetcher busca pontos de receita no backend hoteleiro com degradação
// controlada: consultas pontuais nunca propagam erro (retornam ponto zerado)
// e consultas de intervalo omitem os períodos que falharam.
type Fetcher interface {
	FetchTotal(ctx context.Context) int64
	FetchByDay(ctx context.Context, date time.Time) *domain.RevenuePoint
	FetchByMonth(ctx context.Context, month, year int) *domain.RevenuePoint
	FetchByYear(ctx context.Context, year int) *domain.RevenuePoint
	FetchRange(ctx context.Context, startDate, endDate time.Time, granularity domain.Granularity) ([]*domain.RevenuePoint, error)
}

type Service struct {
	cfg             *config.Config
	hmsService      hms.Integrator
	cacheRepository repository.RevenueCacheRepository
	useCache        bool
}

func NewService(cfg *config.Config, hmsService hms.Integrator) *Service {
	return &Service{
		cfg:        cfg,
		hmsService: hmsService,
	}
}

// WithCache habilita o cache diário de receita
func (s *Service) WithCache(cacheRepo repository.RevenueCacheRepository) *Service {
	s.cacheRepository = cacheRepo
	s.useCache = cacheRepo != nil
	return s
}

// FetchTotal retorna a receita acumulada de todos os tempos.
// Em qualquer falha retorna 0: o painel exibe zero com aviso, nunca quebra.
func (s *Service) FetchTotal(ctx context.Context) int64 {
	total, err := s.hmsService.TotalRevenue(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("revenue: falha ao buscar receita total, exibindo zero")
		return 0
	}

	return total
}

func (s *Service) FetchByDay(ctx context.Context, date time.Time) *domain.RevenuePoint {
	point, err := s.fetchDay(ctx, date)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"date": date.Format(time.DateOnly),
		}).Warn("revenue: falha ao buscar receita do dia, retornando ponto zerado")

		return domain.ZeroRevenuePoint(domain.DayKey(date), domain.GranularityDay)
	}

	return point
}

func (s *Service) FetchByMonth(ctx context.Context, month, year int) *domain.RevenuePoint {
	key := domain.MonthKey(month, year)

	summary, err := s.hmsService.RevenueByMonth(ctx, month, year)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"month": month,
			"year":  year,
		}).Warn("revenue: falha ao buscar receita do mês, retornando ponto zerado")

		return domain.ZeroRevenuePoint(key, domain.GranularityMonth)
	}

	return pointFromSummary(key, domain.GranularityMonth, summary)
}

func (s *Service) FetchByYear(ctx context.Context, year int) *domain.RevenuePoint {
	key := domain.YearKey(year)

	summary, err := s.hmsService.RevenueByYear(ctx, year)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"year": year,
		}).Warn("revenue: falha ao buscar receita do ano, retornando ponto zerado")

		return domain.ZeroRevenuePoint(key, domain.GranularityYear)
	}

	return pointFromSummary(key, domain.GranularityYear, summary)
}

// FetchRange emite uma consulta por período do intervalo fechado
// [startDate, endDate], com concorrência limitada. Períodos cujas consultas
// falharam são omitidos do resultado: dado parcial vale mais que falha total.
// Com o cache habilitado, a série diária é carregada do cache em uma única
// consulta e somente as datas ausentes vão à API.
func (s *Service) FetchRange(ctx context.Context, startDate, endDate time.Time, granularity domain.Granularity) ([]*domain.RevenuePoint, error) {
	cached, fetchers := s.rangeFetchers(ctx, startDate, endDate, granularity)

	points := make([]*domain.RevenuePoint, 0, len(cached)+len(fetchers))
	points = append(points, cached...)

	if len(fetchers) == 0 {
		sortByPeriodStart(points)
		return points, nil
	}

	maxConcurrent := s.cfg.HMS.MaxConcurrentCalls
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	semaphore := make(chan struct{}, maxConcurrent)

	var (
		wg     sync.WaitGroup
		mutex  sync.Mutex
		failed int
	)

	for _, fetch := range fetchers {
		wg.Add(1)

		go func(fetch func(context.Context) (*domain.RevenuePoint, error)) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			point, err := fetch(ctx)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				failed++
				return
			}

			points = append(points, point)
		}(fetch)
	}

	wg.Wait()

	if failed > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"requested": len(fetchers),
			"failed":    failed,
		}).Warn("revenue: intervalo retornado com períodos faltantes")
	}

	// A ordem de término das goroutines é irrelevante: o resultado é
	// sempre ordenado pelo início do período.
	sortByPeriodStart(points)

	return points, nil
}

func sortByPeriodStart(points []*domain.RevenuePoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].PeriodStart().Before(points[j].PeriodStart())
	})
}

// rangeFetchers separa os períodos já resolvidos pelo cache de uma consulta
// por período restante sobreposto ao intervalo
func (s *Service) rangeFetchers(ctx context.Context, startDate, endDate time.Time, granularity domain.Granularity) ([]*domain.RevenuePoint, []func(context.Context) (*domain.RevenuePoint, error)) {
	var (
		cached   []*domain.RevenuePoint
		fetchers []func(context.Context) (*domain.RevenuePoint, error)
	)

	switch granularity {
	case domain.GranularityDay:
		cachedByKey := s.cachedRange(ctx, startDate, endDate)

		for _, date := range dateRange(startDate, endDate) {
			if point, ok := cachedByKey[domain.DayKey(date)]; ok {
				cached = append(cached, point)
				continue
			}

			date := date
			fetchers = append(fetchers, func(ctx context.Context) (*domain.RevenuePoint, error) {
				return s.fetchDayRemote(ctx, date)
			})
		}

	case domain.GranularityMonth:
		for _, period := range monthRange(startDate, endDate) {
			period := period
			fetchers = append(fetchers, func(ctx context.Context) (*domain.RevenuePoint, error) {
				summary, err := s.hmsService.RevenueByMonth(ctx, period.month, period.year)
				if err != nil {
					return nil, err
				}
				return pointFromSummary(domain.MonthKey(period.month, period.year), domain.GranularityMonth, summary), nil
			})
		}

	case domain.GranularityYear:
		for year := startDate.Year(); year <= endDate.Year(); year++ {
			year := year
			fetchers = append(fetchers, func(ctx context.Context) (*domain.RevenuePoint, error) {
				summary, err := s.hmsService.RevenueByYear(ctx, year)
				if err != nil {
					return nil, err
				}
				return pointFromSummary(domain.YearKey(year), domain.GranularityYear, summary), nil
			})
		}
	}

	return cached, fetchers
}

// cachedRange carrega os pontos diários do intervalo em uma única consulta
// ao cache, indexados pela chave do período. Falha do cache degrada para o
// mapa vazio: todas as datas seguem para a API.
func (s *Service) cachedRange(ctx context.Context, startDate, endDate time.Time) map[string]*domain.RevenuePoint {
	cachedByKey := map[string]*domain.RevenuePoint{}

	if !s.useCache {
		return cachedByKey
	}

	points, err := s.cacheRepository.GetByDateRange(startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Warn("revenue: falha ao consultar o cache do intervalo, buscando tudo da API")

		return cachedByKey
	}

	for _, point := range points {
		cachedByKey[point.PeriodKey] = point
	}

	return cachedByKey
}

// fetchDay busca o ponto diário, servindo do cache quando habilitado
func (s *Service) fetchDay(ctx context.Context, date time.Time) (*domain.RevenuePoint, error) {
	if s.useCache {
		cached, err := s.cacheRepository.GetByDate(date)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"date": date.Format(time.DateOnly),
			}).Warn("revenue: falha ao consultar o cache diário, buscando da API")
		} else if cached != nil {
			return cached, nil
		}
	}

	return s.fetchDayRemote(ctx, date)
}

// fetchDayRemote busca o ponto diário na API e alimenta o cache
func (s *Service) fetchDayRemote(ctx context.Context, date time.Time) (*domain.RevenuePoint, error) {
	summary, err := s.hmsService.RevenueByDay(ctx, date)
	if err != nil {
		return nil, err
	}

	point := pointFromSummary(domain.DayKey(date), domain.GranularityDay, summary)

	if s.useCache {
		if err := s.cacheRepository.SaveOrUpdate(date, point); err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"date": date.Format(time.DateOnly),
			}).Warn("revenue: falha ao gravar ponto no cache diário")
		}
	}

	return point, nil
}

// pointFromSummary converte a resposta do backend em um RevenuePoint.
// Quando o backend informa somente o total, aplica a divisão heurística.
func pointFromSummary(key string, granularity domain.Granularity, summary *hmsdomain.RevenueSummary) *domain.RevenuePoint {
	if summary.RoomRevenue != nil && summary.ServiceRevenue != nil {
		return domain.NewRevenuePoint(key, granularity, *summary.RoomRevenue, *summary.ServiceRevenue)
	}

	room, service := domain.SplitRevenue(summary.TotalRevenue)
	return domain.NewRevenuePoint(key, granularity, room, service)
}

type monthPeriod struct {
	month int
	year  int
}

// dateRange gera as datas entre startDate e endDate (inclusive)
func dateRange(startDate, endDate time.Time) []time.Time {
	if startDate.After(endDate) {
		return []time.Time{}
	}

	var dates []time.Time
	current := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}

	return dates
}

// monthRange gera os meses de calendário sobrepostos ao intervalo
func monthRange(startDate, endDate time.Time) []monthPeriod {
	if startDate.After(endDate) {
		return []monthPeriod{}
	}

	var periods []monthPeriod
	current := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(endDate.Year(), endDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		periods = append(periods, monthPeriod{month: int(current.Month()), year: current.Year()})
		current = current.AddDate(0, 1, 0)
	}

	return periods
}
