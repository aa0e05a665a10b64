package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/domain"  // Importing domain models
	"food_delivery/internal/service" // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// OrderItemRequest is one item of a checkout payload
type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`           // Food name
	Image    string  `json:"image" binding:"required"`          // Food image
	Price    float64 `json:"price" binding:"gte=0"`             // Unit price
	Quantity int     `json:"quantity" binding:"required,min=1"` // At least one
}

// AddressRequest is the delivery address of a checkout payload
type AddressRequest struct {
	FirstName string `json:"firstName" binding:"required"` // Recipient first name
	LastName  string `json:"lastName" binding:"required"`  // Recipient last name
	City      string `json:"city" binding:"required"`      // City
	Pincode   string `json:"pincode" binding:"required"`   // Postal code
	Phone     string `json:"phone" binding:"required"`     // Contact phone
}

// CreateOrderRequest is the body of POST /orders. A userId in the body is ignored.
type CreateOrderRequest struct {
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"` // Ordered items
	Address AddressRequest     `json:"address"`                             // Delivery address
	Status  string             `json:"status"`                              // Optional initial status
}

// toOrder converts the request into the stored snapshot shape
func (r CreateOrderRequest) toOrder() domain.Order {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.OrderItem{Name: it.Name, Image: it.Image, Price: it.Price, Quantity: it.Quantity})
	}
	return domain.Order{
		Items: items,
		Address: domain.Address{
			FirstName: r.Address.FirstName,
			LastName:  r.Address.LastName,
			City:      r.Address.City,
			Pincode:   r.Address.Pincode,
			Phone:     r.Address.Phone,
		},
		Status: r.Status,
	}
}

// ListUserOrdersHandler returns the caller's own orders
func ListUserOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateOrderHandler stores a checkout snapshot owned by the caller
func CreateOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order: " + err.Error()})
			return
		}
		order, err := orders.Create(c.Request.Context(), userID, req.toOrder())
		if err != nil {
			respondError(c, err, "Failed to create order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,           // Order owner
			"order_id": order.ID,         // New order id
			"items":    len(order.Items), // Item count
		}).Info("Order created")
		c.JSON(http.StatusCreated, order)
	}
}
