package service

import (
	"context"
	"errors"
	"fmt"

	"food_delivery/internal/domain"

	"gorm.io/gorm"
)

// CartService mutates the cart stored on each user record. Every call loads
// the whole cart and writes it back; concurrent writers for the same user are
// last-write-wins.
type CartService struct {
	db *gorm.DB
}

// NewCartService returns a CartService
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db} // Wrap the store
}

// PopulatedLine is a cart line with its food reference resolved. Food is nil
// when the referenced item no longer exists.
type PopulatedLine struct {
	Food  *domain.Food `json:"foodId"`
	Count int          `json:"count"`
}

// GetCart returns the user's cart with food records resolved. A missing user
// yields an empty cart.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]PopulatedLine, error) {
	user, err := s.loadUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return []PopulatedLine{}, nil // Unknown user reads as an empty cart
	}
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, user.Cart)
}

// GetCount returns how many of foodID are in the user's cart, 0 if none
func (s *CartService) GetCount(ctx context.Context, userID, foodID string) (int, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if i := indexOf(user.Cart, foodID); i >= 0 {
		return user.Cart[i].Count, nil // Quantity of the matching line
	}
	return 0, nil // Food not in cart
}

// UpsertLine sets the quantity of foodID in the cart. A count of zero or less
// removes the line; an existing line is overwritten, not added to.
func (s *CartService) UpsertLine(ctx context.Context, userID, foodID string, count int) ([]domain.CartLine, error) {
	if foodID == "" {
		return nil, newError(ErrNotFound, "foodId is required") // Nothing to upsert
	}
	canonical, err := domain.CanonicalID(foodID) // Store ids in one spelling
	if err != nil {
		return nil, newError(ErrValidation, "foodId is malformed")
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := indexOf(user.Cart, canonical) // Existing line, -1 if none
	switch {
	case count <= 0: // Non-positive count removes
		if idx >= 0 {
			user.Cart = append(user.Cart[:idx], user.Cart[idx+1:]...) // Drop the line, keep order
		}
	case idx >= 0: // Overwrite, never accumulate
		user.Cart[idx].Count = count
	default:
		user.Cart = append(user.Cart, domain.CartLine{FoodID: canonical, Count: count}) // New lines go last
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// RemoveLine drops every line for foodID and returns the populated cart
func (s *CartService) RemoveLine(ctx context.Context, userID, foodID string) ([]PopulatedLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := make([]domain.CartLine, 0, len(user.Cart)) // Lines that survive the removal
	for _, line := range user.Cart {
		if !domain.SameID(line.FoodID, foodID) {
			kept = append(kept, line)
		}
	}
	user.Cart = kept
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return s.populate(ctx, user.Cart)
}

// ClearCart empties the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	user.Cart = []domain.CartLine{}
	return s.save(ctx, user) // Persist the emptied cart
}

func (s *CartService) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error // Find user by id
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	if user.Cart == nil {
		user.Cart = []domain.CartLine{} // Empty, never null
	}
	return &user, nil
}

func (s *CartService) save(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil { // Whole document, last write wins
		return fmt.Errorf("save cart for %s: %w", user.ID, err)
	}
	return nil
}

// populate resolves food references with one query, keeping cart order
func (s *CartService) populate(ctx context.Context, cart []domain.CartLine) ([]PopulatedLine, error) {
	out := make([]PopulatedLine, 0, len(cart))
	if len(cart) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(cart))
	for _, line := range cart {
		ids = append(ids, line.FoodID)
	}
	var foods []domain.Food
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil { // One query for every line
		return nil, fmt.Errorf("populate cart: %w", err)
	}
	byID := make(map[string]*domain.Food, len(foods))
	for i := range foods {
		byID[foods[i].ID] = &foods[i]
	}
	for _, line := range cart {
		out = append(out, PopulatedLine{Food: byID[line.FoodID], Count: line.Count}) // nil Food for deleted items
	}
	return out, nil
}

func indexOf(cart []domain.CartLine, foodID string) int {
	for i, line := range cart {
		if domain.SameID(line.FoodID, foodID) {
			return i
		}
	}
	return -1
}
