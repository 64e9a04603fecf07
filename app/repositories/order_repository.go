package repositories

import (
	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) All() ([]models.Order, error) {
	orders := []models.Order{}
	err := orm.DB().Model(&models.Order{}).
		Preload("User").Preload("Items").
		Order("order_date DESC").Get(&orders)
	return orders, err
}

func (r *OrderRepository) Find(id uint) (*models.Order, error) {
	var order models.Order
	if err := orm.DB().Preload("User").Preload("Items").Where("id = ?", id).First(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ByUser(userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := orm.DB().Model(&models.Order{}).Where("user_id = ?", userID).
		Preload("Items").Order("order_date DESC").Get(&orders)
	return orders, err
}

func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// Totals aggregates delivered revenue and order counts for the dashboard.
// Cancelled orders are excluded from sales but counted as orders.
func (r *OrderRepository) Totals() (models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := orm.DB().Model(&models.Order{}).Count(&stats.TotalOrders); err != nil {
		return stats, err
	}

	type sumRow struct{ Total float64 }
	var sales sumRow
	if err := orm.DB().Model(&models.Order{}).
		Where("status != ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_price), 0) AS total").Scan(&sales); err != nil {
		return stats, err
	}
	stats.TotalSales = sales.Total

	type countRow struct{ Total int64 }
	var items countRow
	if err := orm.DB().Model(&models.OrderItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total").Scan(&items); err != nil {
		return stats, err
	}
	stats.TotalOrderItems = items.Total

	return stats, nil
}
