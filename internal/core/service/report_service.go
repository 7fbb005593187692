package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kosapp/kos-api/internal/api/metrics"
	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

// ReportCache abstracts the short-TTL dashboard cache (Redis). Lookups that
// miss or fail fall through to a fresh aggregation.
type ReportCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

const dashboardCacheTTL = time.Minute

// ReportService combines the room-occupancy snapshot with the monthly
// payment report. Both aggregations tolerate empty inputs and return zeroed
// totals rather than failing.
type ReportService struct {
	rooms    ports.RoomRepository
	payments ports.PaymentRepository
	cache    ReportCache
	logger   zerolog.Logger
	now      func() time.Time
}

func NewReportService(rooms ports.RoomRepository, payments ports.PaymentRepository, cache ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{
		rooms:    rooms,
		payments: payments,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// Dashboard returns the combined overview for (month, year); zero values
// default to the current period.
func (s *ReportService) Dashboard(ctx context.Context, principal domain.Principal, month, year int) (*domain.Dashboard, error) {
	if !domain.Allowed(principal.Role, domain.ActionPaymentReport) {
		return nil, domain.ErrForbidden
	}

	now := s.now().UTC()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if !domain.ValidPeriod(month, year) {
		return nil, fmt.Errorf("%w: period %d/%d is out of range", domain.ErrValidation, month, year)
	}

	key := fmt.Sprintf("dashboard:%d-%02d", year, month)
	if s.cache != nil {
		var cached domain.Dashboard
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache read failed")
		} else if hit {
			metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
	}

	occupancy, err := s.rooms.OccupancyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: occupancy: %w", err)
	}
	report, err := s.payments.MonthlyReport(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("dashboard: monthly report: %w", err)
	}

	dashboard := &domain.Dashboard{Occupancy: *occupancy, Payments: *report}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, dashboard, dashboardCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return dashboard, nil
}
