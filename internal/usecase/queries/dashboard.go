package queries

import (
	"context"
)

type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStatsView, error)
}

type DashboardReadStore interface {
	CollectStats(ctx context.Context) (*DashboardStatsView, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStatsView, error) {
	return q.readStore.CollectStats(ctx)
}
