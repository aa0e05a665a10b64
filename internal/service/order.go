package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food_delivery/internal/domain"

	"gorm.io/gorm"
)

// OrderService stores order snapshots and lets admins move them through delivery
type OrderService struct {
	db *gorm.DB
}

// NewOrderService returns an OrderService
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db} // Wrap the store
}

// ListAll returns every order of every user
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&orders).Error; err != nil { // Oldest first
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListByUser returns the orders placed by userID
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&orders).Error; err != nil { // Only this user's orders
		return nil, fmt.Errorf("list orders for %s: %w", userID, err)
	}
	return orders, nil
}

// Create persists order as a new snapshot owned by userID. Any id, owner or
// timestamp in order is replaced; the cart is left untouched.
func (s *OrderService) Create(ctx context.Context, userID string, order domain.Order) (domain.Order, error) {
	if err := validateOrder(order); err != nil {
		return domain.Order{}, err
	}
	order.ID = ""                      // Always a fresh id
	order.UserID = userID              // Owner comes from the token
	order.CreatedAt = time.Now().UTC() // Server clock
	if order.Status == "" {
		order.Status = domain.StatusInProcess // Default status
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil { // Insert the snapshot
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateStatus sets the status of an order. Only the recognized statuses are accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	if !domain.IsValidStatus(status) {
		return domain.Order{}, newError(ErrValidation, fmt.Sprintf("Unknown status %q", status))
	}
	canonical, err := domain.CanonicalID(orderID)
	if err != nil {
		return domain.Order{}, newError(ErrNotFound, "Order not found") // Malformed id matches nothing
	}
	db := s.db.WithContext(ctx)
	var order domain.Order
	err = db.Where("id = ?", canonical).First(&order).Error // Find order by id
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, newError(ErrNotFound, "Order not found")
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("load order %s: %w", canonical, err)
	}
	if err := db.Model(&order).Update("status", status).Error; err != nil { // Only the status column changes
		return domain.Order{}, fmt.Errorf("update order %s: %w", canonical, err)
	}
	order.Status = status
	return order, nil
}

// Delete removes an order. Unknown or malformed ids are a no-op.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	canonical, err := domain.CanonicalID(orderID)
	if err != nil {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("id = ?", canonical).Delete(&domain.Order{}).Error; err != nil { // Missing rows are fine
		return fmt.Errorf("delete order %s: %w", canonical, err)
	}
	return nil
}

func validateOrder(order domain.Order) error {
	if len(order.Items) == 0 { // Empty orders are rejected
		return newError(ErrValidation, "Order must contain at least one item")
	}
	for _, it := range order.Items {
		if strings.TrimSpace(it.Name) == "" || strings.TrimSpace(it.Image) == "" {
			return newError(ErrValidation, "Every item needs a name and image")
		}
		if it.Price < 0 {
			return newError(ErrValidation, "Item price must not be negative")
		}
		if it.Quantity < 1 {
			return newError(ErrValidation, "Item quantity must be at least 1")
		}
	}
	a := order.Address // Every address field is required
	for _, v := range []string{a.FirstName, a.LastName, a.City, a.Pincode, a.Phone} {
		if strings.TrimSpace(v) == "" {
			return newError(ErrValidation, "Address is incomplete")
		}
	}
	if order.Status != "" && !domain.IsValidStatus(order.Status) {
		return newError(ErrValidation, fmt.Sprintf("Unknown status %q", order.Status))
	}
	return nil
}
