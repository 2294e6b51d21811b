package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

// AnalyticsSummary is the aggregate snapshot shown on the admin dashboard.
type AnalyticsSummary struct {
	TotalUsers     int64            `json:"total_users"`
	TotalProducts  int64            `json:"total_products"`
	TotalOrders    int64            `json:"total_orders"`
	TotalReviews   int64            `json:"total_reviews"`
	Revenue        float64          `json:"revenue"` // сумма по заказам без отменённых
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	ReviewStats    ReviewStats      `json:"review_stats"`
	TopProducts    []TopProduct     `json:"top_products"`
	MonthlySales   []SalesPoint     `json:"monthly_sales"`
}

type ReviewStats struct {
	Approved      int64   `json:"approved"`
	Pending       int64   `json:"pending"`
	AverageRating float64 `json:"average_rating"` // только по одобренным
}

// TopProduct is one row of the best-sellers report.
type TopProduct struct {
	ProductTitle string  `json:"product_title"`
	OrderCount   int64   `json:"order_count"`
	Revenue      float64 `json:"revenue"`
}

// SalesPoint is one bucket of the sales chart. Period is formatted by
// granularity: "2026-08-28" (day), "2026-34" (week), "2026-08" (month).
type SalesPoint struct {
	Period  string  `json:"period"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsRepository interface {
	Summary() (*AnalyticsSummary, error)
	TopProducts(limit int) ([]TopProduct, error)
	Sales(period string) ([]SalesPoint, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Summary() (*AnalyticsSummary, error) {
	summary := &AnalyticsSummary{
		OrdersByStatus: make(map[string]int64),
	}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&model.User{}, &summary.TotalUsers},
		{&model.Product{}, &summary.TotalProducts},
		{&model.Order{}, &summary.TotalOrders},
		{&model.Review{}, &summary.TotalReviews},
	}
	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dst).Error; err != nil {
			logger.Error("Failed to count rows for analytics", err)
			return nil, err
		}
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := r.db.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		summary.OrdersByStatus[row.Status] = row.Count
	}

	if err := r.db.Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCancelled).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&summary.Revenue).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Review{}).
		Where("approved = ?", true).
		Count(&summary.ReviewStats.Approved).Error; err != nil {
		return nil, err
	}
	summary.ReviewStats.Pending = summary.TotalReviews - summary.ReviewStats.Approved

	if err := r.db.Model(&model.Review{}).
		Where("approved = ?", true).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&summary.ReviewStats.AverageRating).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *analyticsRepository) TopProducts(limit int) ([]TopProduct, error) {
	var rows []TopProduct
	if err := r.db.Model(&model.Order{}).
		Select("product_title, COUNT(*) as order_count, COALESCE(SUM(price * quantity), 0) as revenue").
		Where("status <> ?", model.OrderStatusCancelled).
		Group("product_title").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		logger.Error("Failed to compute top products", err)
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) Sales(period string) ([]SalesPoint, error) {
	format := "%Y-%m"
	switch period {
	case "day":
		format = "%Y-%m-%d"
	case "week":
		format = "%Y-%W"
	}

	var rows []SalesPoint
	if err := r.db.Model(&model.Order{}).
		Select(fmt.Sprintf(
			"strftime('%s', created_at) as period, COUNT(*) as orders, COALESCE(SUM(price * quantity), 0) as revenue",
			format)).
		Where("status <> ?", model.OrderStatusCancelled).
		Group("period").
		Order("period").
		Scan(&rows).Error; err != nil {
		logger.Error("Failed to compute sales chart", err, map[string]interface{}{
			"period": period,
		})
		return nil, err
	}
	return rows, nil
}
