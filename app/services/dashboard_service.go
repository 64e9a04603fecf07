package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 5 * time.Minute
)

// DashboardService aggregates the console home-page stats. Results are
// cached in Redis; a scheduled job refreshes the cache every minute so the
// polling console usually gets a warm hit.
type DashboardService struct {
	orders *repositories.OrderRepository
	idols  *repositories.IdolRepository
	users  *repositories.UserRepository
}

func NewDashboardService(orders *repositories.OrderRepository, idols *repositories.IdolRepository, users *repositories.UserRepository) *DashboardService {
	return &DashboardService{orders: orders, idols: idols, users: users}
}

// Stats returns the dashboard aggregates, from cache when warm.
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if cache.Get(dashboardCacheKey, &stats) {
		return stats, nil
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the aggregates and rewrites the cache.
func (s *DashboardService) Refresh(ctx context.Context) (models.DashboardStats, error) {
	stats, err := s.orders.Totals()
	if err != nil {
		return stats, err
	}

	inventory, err := s.idols.TotalStock()
	if err != nil {
		return stats, err
	}
	stats.InventoryCount = inventory

	products, err := s.idols.Count()
	if err != nil {
		return stats, err
	}
	stats.ProductsCount = models.ProductsCount{ProductsCount: products}

	users, err := s.users.Count()
	if err != nil {
		return stats, err
	}
	stats.UsersCount = models.UsersCount{Count: users}

	if err := cache.Set(dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
		logger.Warn("dashboard cache write failed", "error", err)
	}
	return stats, nil
}
