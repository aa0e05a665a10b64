package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/middleware" // Context keys
	"food_delivery/internal/service"    // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateFoodRequest is the body of POST /fooditems
type CreateFoodRequest struct {
	Name        string   `json:"name"`        // Display name
	Image       string   `json:"image"`       // Image URI
	Price       *float64 `json:"price"`       // Unit price, required
	Description string   `json:"description"` // Free text
	Category    string   `json:"category"`    // Category label
}

// MenuHandler lists every menu entry
func MenuHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		menu, err := catalog.ListMenu(c.Request.Context())
		if err != nil {
			respondError(c, err, "Server error")
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

// ListFoodHandler lists food, filtered by the optional search query
func ListFoodHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		foods, err := catalog.ListFood(c.Request.Context(), c.Query("search"))
		if err != nil {
			respondError(c, err, "Something went wrong")
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

// FoodByCategoryHandler lists food whose category contains the path segment
func FoodByCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		foods, err := catalog.ListFoodByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			respondError(c, err, "Failed to fetch food items by category")
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

// CreateFoodHandler adds a food item (admin only)
func CreateFoodHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateFoodRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		food, err := catalog.CreateFood(c.Request.Context(), service.NewFood{
			Name:        req.Name,
			Image:       req.Image,
			Price:       req.Price,
			Description: req.Description,
			Category:    req.Category,
		})
		if err != nil {
			respondError(c, err, "Failed to add item")
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin":   c.GetString(middleware.AdminUsernameKey), // Acting admin
			"food_id": food.ID,                                  // New food id
		}).Info("Food item created")
		c.JSON(http.StatusCreated, food)
	}
}

// DeleteFoodHandler removes a food item (admin only); absent ids succeed
func DeleteFoodHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := catalog.DeleteFood(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to remove item")
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin":   c.GetString(middleware.AdminUsernameKey), // Acting admin
			"food_id": id,                                       // Removed food id
		}).Info("Food item removed")
		c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
	}
}
