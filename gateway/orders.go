package gateway

import (
	"errors"
	"net/http"

	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
	"github.com/example/tableserve/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type submitOrderReq struct {
	Name        string            `json:"name"`
	Mobile      string            `json:"mobile" binding:"omitempty,len=10,numeric"`
	TotalAmount float64           `json:"totalAmount"`
	CartItems   []models.CartLine `json:"cartItems"`
	TableNumber int               `json:"tableNumber" binding:"required,min=1,max=10"`
	UserID      string            `json:"userId"`
}

type updateOrderStatusReq struct {
	Status string `json:"status"`
}

func (g *Gateway) submitOrder(c *gin.Context) {
	var req submitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := g.orders.Submit(c.Request.Context(), service.SubmitOrderIn{
		Name:        req.Name,
		Mobile:      req.Mobile,
		TableNumber: req.TableNumber,
		TotalAmount: req.TotalAmount,
		CartItems:   req.CartItems,
		UserID:      req.UserID,
	})
	if err != nil {
		g.logger.Error("failed to save order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order saved successfully", "order": order})
}

func (g *Gateway) listOrders(c *gin.Context) {
	reverse := c.Query("reverse") == "true"

	orders, err := g.orders.List(c.Request.Context(), reverse)
	if err != nil {
		g.logger.Error("failed to fetch orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders."})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (g *Gateway) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	err := g.orders.MarkDelivered(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		case errors.Is(err, service.ErrAlreadyDelivered):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order is already delivered"})
		default:
			g.logger.Error("failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
