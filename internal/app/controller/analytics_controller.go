package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Summary GET /api/admin/analytics
func (ctrl *AnalyticsController) Summary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	summary, err := ctrl.analyticsService.GetSummary()
	if err != nil {
		log.Error("Failed to build analytics summary", err)
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TopProducts GET /api/admin/analytics/top-products
func (ctrl *AnalyticsController) TopProducts(c *gin.Context) {
	products, err := ctrl.analyticsService.GetTopProducts()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Sales GET /api/admin/analytics/sales?period=day|week|month
func (ctrl *AnalyticsController) Sales(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	sales, err := ctrl.analyticsService.GetSales(period)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": sales})
}
