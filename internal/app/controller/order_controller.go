package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

type CreateOrderRequest struct {
	ProductID  uint   `json:"productId" binding:"required"`
	Quantity   int    `json:"quantity"`
	Address    string `json:"address"`
	CardNumber string `json:"cardNumber"`
}

// List returns the caller's orders, newest first
// GET /api/orders
func (ctrl *OrderController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	orders, err := ctrl.orderService.GetUserOrders(userID)
	if err != nil {
		log.Error("Failed to list user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Create places an order
// POST /api/orders
func (ctrl *OrderController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Не указан товар для заказа")
		return
	}

	order, err := ctrl.orderService.CreateOrder(userID, service.CreateOrderInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Address:    req.Address,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressRequired):
			apperrors.BadRequest(c, "Укажите адрес доставки")
		case errors.Is(err, service.ErrInvalidCardNumber):
			apperrors.BadRequest(c, "Некорректный номер карты")
		case errors.Is(err, service.ErrInvalidQuantity):
			apperrors.BadRequest(c, "Некорректное количество товара")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, "Товар не найден")
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": req.ProductID,
			})
			apperrors.InternalError(c, "Не удалось оформить заказ")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Заказ успешно оформлен",
		"order":   order,
	})
}

// Cancel cancels the caller's order
// PATCH /api/orders/:id/cancel
func (ctrl *OrderController) Cancel(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.CancelOrder(orderID, userID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, "Заказ не найден")
			return
		}
		log.Error("Failed to cancel order", err, map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Заказ отменён",
		"order":   order,
	})
}
