package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
)

// LeaveService backs the leave list view, the stats page and the JSON API.
type LeaveService interface {
	listview.Resource[Leave, Filter]

	GetLeave(ctx context.Context, uid string) (Leave, error)
	GetStats(ctx context.Context, req StatsRequest) (StatsResponse, error)
}
