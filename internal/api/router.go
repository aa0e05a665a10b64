package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/middleware" // Custom package for middleware
	"food_delivery/internal/service"    // Business services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps are the collaborators the HTTP layer is built from
type Deps struct {
	DB          *gorm.DB      // Store handle
	Redis       *redis.Client // Catalog cache, nil disables caching
	UserSecret  string        // User token secret
	AdminSecret string        // Admin token secret
}

// SetupRouter builds the gin engine with every route registered
func SetupRouter(deps Deps) *gin.Engine {
	auth := service.NewAuthService(deps.DB, deps.UserSecret, deps.AdminSecret)
	catalog := service.NewCatalogService(deps.DB, deps.Redis)
	carts := service.NewCartService(deps.DB)
	orders := service.NewOrderService(deps.DB)

	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.LoggerMiddleware(), middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/register", RegisterHandler(auth))                    // Registration endpoint
	r.POST("/login", LoginHandler(auth))                          // Login endpoint
	r.POST("/admin/login", AdminLoginHandler(auth))               // Admin login endpoint
	r.GET("/menu", MenuHandler(catalog))                          // Menu listing
	r.GET("/fooditems", ListFoodHandler(catalog))                 // Food listing and search
	r.GET("/fooditems/:category", FoodByCategoryHandler(catalog)) // Food by category

	// User routes (protected by the user token)
	user := r.Group("", middleware.UserAuthMiddleware(deps.UserSecret))
	user.GET("/cart", GetCartHandler(carts))                           // Populated cart
	user.POST("/cart/add", CartAddHandler(carts))                      // Upsert a line
	user.DELETE("/cart/:foodId", CartRemoveHandler(carts))             // Remove a line
	user.POST("/cart/clear", CartClearHandler(carts))                  // Empty the cart
	user.GET("/cart/count/:foodId", CartCountHandler(carts, "foodId")) // Quantity of one food
	user.GET("/eachfooditem/:id", CartCountHandler(carts, "id"))       // Same operation, legacy path
	user.GET("/orders", ListUserOrdersHandler(orders))                 // Own orders
	user.POST("/orders", CreateOrderHandler(orders))                   // Checkout

	// Admin routes (protected by the admin token, admin must still exist)
	admin := r.Group("", middleware.AdminAuthMiddleware(deps.AdminSecret), middleware.AdminOnlyMiddleware(deps.DB))
	admin.GET("/admin/listitems", ListFoodHandler(catalog))      // Food listing for the dashboard
	admin.POST("/fooditems", CreateFoodHandler(catalog))         // Add a food item
	admin.DELETE("/fooditems/:id", DeleteFoodHandler(catalog))   // Remove a food item
	admin.GET("/admin/orders", ListAllOrdersHandler(orders))     // Every order
	admin.PATCH("/orders/:id", UpdateOrderStatusHandler(orders)) // Change status
	admin.DELETE("/orders/:id", DeleteOrderHandler(orders))      // Cancel an order

	return r
}
