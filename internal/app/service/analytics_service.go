package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

type AnalyticsService interface {
	GetSummary() (*repository.AnalyticsSummary, error)
	GetTopProducts() ([]repository.TopProduct, error)
	// GetSales buckets non-cancelled orders by day, week or month.
	GetSales(period string) ([]repository.SalesPoint, error)
	// ExportOrders renders the filtered order list as an XLSX workbook.
	ExportOrders(filter repository.OrderFilter) (*bytes.Buffer, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, orderRepo repository.OrderRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		orderRepo:     orderRepo,
	}
}

// GetSummary assembles the whole dashboard in one response: totals,
// status breakdown, best sellers and the sales chart.
func (s *analyticsService) GetSummary() (*repository.AnalyticsSummary, error) {
	summary, err := s.analyticsRepo.Summary()
	if err != nil {
		return nil, err
	}

	if summary.TopProducts, err = s.analyticsRepo.TopProducts(10); err != nil {
		return nil, err
	}
	if summary.MonthlySales, err = s.analyticsRepo.Sales("month"); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *analyticsService) GetTopProducts() ([]repository.TopProduct, error) {
	return s.analyticsRepo.TopProducts(10)
}

func (s *analyticsService) GetSales(period string) ([]repository.SalesPoint, error) {
	return s.analyticsRepo.Sales(period)
}

func (s *analyticsService) ExportOrders(filter repository.OrderFilter) (*bytes.Buffer, error) {
	orders, err := s.orderRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Пользователь", "Товар", "Цена", "Количество", "Сумма", "Статус", "Дата"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, order := range orders {
		email := ""
		if order.User != nil {
			email = order.User.Email
		}
		values := []interface{}{
			order.ID,
			email,
			order.ProductTitle,
			order.Price,
			order.Quantity,
			order.Price * float64(order.Quantity),
			string(order.Status),
			order.CreatedAt.Format("2006-01-02 15:04"),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to build orders export", err)
		return nil, fmt.Errorf("failed to build orders export: %w", err)
	}

	logger.Info("Orders exported to XLSX", map[string]interface{}{
		"orders": len(orders),
	})
	return buf, nil
}
