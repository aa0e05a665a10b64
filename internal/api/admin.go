package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/middleware" // Context keys
	"food_delivery/internal/service"    // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UpdateStatusRequest is the body of PATCH /orders/:id
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"` // New delivery status
}

// ListAllOrdersHandler returns every order of every user
func ListAllOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateOrderStatusHandler moves an order to a new delivery status
func UpdateOrderStatusHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err, "Failed to update order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin":    c.GetString(middleware.AdminUsernameKey), // Acting admin
			"order_id": order.ID,                                 // Updated order
			"status":   order.Status,                             // New status
		}).Info("Order status updated")
		c.JSON(http.StatusOK, order)
	}
}

// DeleteOrderHandler removes an order; absent ids succeed
func DeleteOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := orders.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to cancel order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin":    c.GetString(middleware.AdminUsernameKey), // Acting admin
			"order_id": id,                                       // Removed order
		}).Info("Order cancelled")
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}
