package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type AdminOrderController struct {
	orderService     service.OrderService
	analyticsService service.AnalyticsService
}

func NewAdminOrderController(orderService service.OrderService, analyticsService service.AnalyticsService) *AdminOrderController {
	return &AdminOrderController{
		orderService:     orderService,
		analyticsService: analyticsService,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func orderFilterFromQuery(c *gin.Context) repository.OrderFilter {
	filter := repository.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if userID, err := strconv.ParseUint(c.Query("userId"), 10, 32); err == nil {
		filter.UserID = uint(userID)
	}
	if productID, err := strconv.ParseUint(c.Query("productId"), 10, 32); err == nil {
		filter.ProductID = uint(productID)
	}
	return filter
}

// List GET /api/admin/orders?status=&userId=&productId=&search=
func (ctrl *AdminOrderController) List(c *gin.Context) {
	orders, err := ctrl.orderService.ListOrders(orderFilterFromQuery(c))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Get GET /api/admin/orders/:id
func (ctrl *AdminOrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, "Заказ не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateStatus PATCH /api/admin/orders/:id/status
func (ctrl *AdminOrderController) UpdateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Не указан статус заказа")
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, "Некорректный статус заказа")
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, "Заказ не найден")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Export GET /api/admin/orders/export — XLSX download of the filtered list
func (ctrl *AdminOrderController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.analyticsService.ExportOrders(orderFilterFromQuery(c))
	if err != nil {
		log.Error("Failed to export orders", err)
		apperrors.InternalError(c, "Не удалось сформировать выгрузку")
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
