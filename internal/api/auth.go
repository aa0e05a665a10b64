package api

import (
	"net/http" // HTTP status codes

	"food_delivery/internal/service" // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	LoginUsername string `json:"loginUsername" binding:"required"` // Username must be provided
	LoginPassword string `json:"loginPassword" binding:"required"` // Password must be provided
}

// AdminLoginRequest is the body of POST /admin/login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginResponse carries a user token
type LoginResponse struct {
	JWTToken string `json:"jwt_token"` // Signed user token
}

// AdminLoginResponse carries an admin token
type AdminLoginResponse struct {
	Success bool   `json:"success"` // Always true on 200
	Message string `json:"message"` // Human readable status
	Token   string `json:"token"`   // Signed admin token
}

// RegisterHandler creates a user account; the caller logs in separately
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		if err := auth.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
			respondError(c, err, "Server error")
			return
		}
		logrus.WithField("username", req.Username).Info("User registered")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		token, err := auth.Login(c.Request.Context(), req.LoginUsername, req.LoginPassword)
		if err != nil {
			respondError(c, err, "Server error")
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, LoginResponse{JWTToken: token})
	}
}

// AdminLoginHandler authenticates an admin and returns an admin token
func AdminLoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		token, err := auth.AdminLogin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err, "Server error")
			return
		}
		logrus.WithField("admin", req.Username).Info("Admin logged in")
		c.JSON(http.StatusOK, AdminLoginResponse{Success: true, Message: "Admin login successful!", Token: token})
	}
}
