package ports

import (
	"context"

	"github.com/kosapp/kos-api/internal/core/domain"
)

// ReportService combines room occupancy statistics and the monthly payment
// report into the admin dashboard. Pure aggregation over store snapshots.
type ReportService interface {
	Dashboard(ctx context.Context, principal domain.Principal, month, year int) (*domain.Dashboard, error)
}
