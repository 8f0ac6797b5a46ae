package controller

import (
	"net/http"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/service"
	"aventura-gamer-service/internal/status"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *service.OrderService
}

func NewOrderController(s *service.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /orders/mine — órdenes del usuario particionadas en activas y
// completadas, cada una con su tripla de display y el progreso del tracker
func (ctl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetString("userID")
	active, completed, err := ctl.Service.GetMinePartitioned(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active":    decorate(active),
		"completed": decorate(completed),
	})
}

func decorate(orders []*model.Order) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"order":    o,
			"display":  status.Classify(o.ShippingStatus),
			"progress": status.ComputeProgress(o.ShippingStatus),
		})
	}
	return out
}

// GET /orders/:orderId — dueño o staff
func (ctl *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("orderId")
	actorID := c.GetString("userID")

	o, err := ctl.Service.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !isStaff(c) && o.UserID != actorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot view another user's order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    o,
		"display":  status.Classify(o.ShippingStatus),
		"progress": status.ComputeProgress(o.ShippingStatus),
	})
}

// PATCH /orders/:orderId/status — staff avanza/cancela, el dueño cancela
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.UpdateStatus(
		c.Request.Context(),
		orderID,
		req.Status,
		req.Reason,
		c.GetString("userID"),
		isStaff(c),
		req.TrackingNumber,
		req.EstimatedDelivery,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// GET /admin/orders — staff only (tablero de seguimiento)
func (ctl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctl.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decorate(orders))
}

// GET /admin/orders/state/:state — staff only
func (ctl *OrderController) GetAllOrdersByState(c *gin.Context) {
	state := c.Param("state")
	orders, err := ctl.Service.GetByStatus(c.Request.Context(), state)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decorate(orders))
}
