package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/service" // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CartAddRequest is the body of POST /cart/add
type CartAddRequest struct {
	FoodID string `json:"foodId"` // Food to set the quantity of
	Count  int    `json:"count"`  // New quantity; zero or less removes the line
}

// GetCartHandler returns the caller's cart with food records resolved
func GetCartHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		cart, err := carts.GetCart(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// CartCountHandler returns the quantity of one food item in the caller's cart
func CartCountHandler(carts *service.CartService, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		count, err := carts.GetCount(c.Request.Context(), userID, c.Param(param))
		if err != nil {
			respondError(c, err, "Cannot find the food item")
			return
		}
		c.JSON(http.StatusOK, count)
	}
}

// CartAddHandler inserts, overwrites or removes a cart line
func CartAddHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req CartAddRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		cart, err := carts.UpsertLine(c.Request.Context(), userID, req.FoodID, req.Count)
		if err != nil {
			respondError(c, err, "Failed to update cart")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,     // Cart owner
			"food_id": req.FoodID, // Food id as sent
			"count":   req.Count,  // Requested quantity
			"lines":   len(cart),  // Lines after the update
		}).Info("Cart updated")
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "cart": cart})
	}
}

// CartRemoveHandler drops one food item from the caller's cart
func CartRemoveHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		cart, err := carts.RemoveLine(c.Request.Context(), userID, c.Param("foodId"))
		if err != nil {
			respondError(c, err, "Failed to remove item")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,            // Cart owner
			"food_id": c.Param("foodId"), // Removed food id
		}).Info("Cart line removed")
		c.JSON(http.StatusOK, cart)
	}
}

// CartClearHandler empties the caller's cart
func CartClearHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		if err := carts.ClearCart(c.Request.Context(), userID); err != nil {
			respondError(c, err, "Failed to clear cart")
			return
		}
		logrus.WithField("user_id", userID).Info("Cart cleared")
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
