package service

import (
	"context"
	"fmt"
	"strings"

	"food_delivery/internal/domain"
	"food_delivery/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Cache key layout for catalog reads. Food entries live under
// foodCachePrefix + generation, and a write bumps foodGenKey so a read that
// raced the write can only land its result under a generation nobody reads.
const (
	menuCacheKey    = "catalog:menu"
	foodCachePrefix = "catalog:food:"
	foodGenKey      = "catalog:foodgen"
)

// CatalogService serves food items and menu entries. Reads go through the
// redis cache when a client is configured.
type CatalogService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewCatalogService returns a CatalogService; rdb may be nil to disable caching
func NewCatalogService(db *gorm.DB, rdb *redis.Client) *CatalogService {
	return &CatalogService{db: db, rdb: rdb}
}

// NewFood holds the fields an admin supplies for a food item
type NewFood struct {
	Name        string
	Image       string
	Price       *float64
	Description string
	Category    string
}

// ListFood returns food whose name or category contains search, ignoring
// case. An empty search returns everything.
func (s *CatalogService) ListFood(ctx context.Context, search string) ([]domain.Food, error) {
	search = strings.TrimSpace(search)
	key := "all"
	if search != "" {
		key = "search:" + strings.ToLower(search)
	}
	return s.cachedFood(ctx, key, func(q *gorm.DB) *gorm.DB {
		if search == "" {
			return q
		}
		pattern := likePattern(search)
		return q.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(category) LIKE ? ESCAPE '!'", pattern, pattern)
	})
}

// ListFoodByCategory returns food whose category contains category, ignoring case
func (s *CatalogService) ListFoodByCategory(ctx context.Context, category string) ([]domain.Food, error) {
	category = strings.TrimSpace(category)
	key := "category:" + strings.ToLower(category)
	return s.cachedFood(ctx, key, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(category) LIKE ? ESCAPE '!'", likePattern(category))
	})
}

// ListMenu returns every menu entry
func (s *CatalogService) ListMenu(ctx context.Context) ([]domain.Menu, error) {
	menu := []domain.Menu{}
	if found, err := utils.GetCache(ctx, s.rdb, menuCacheKey, &menu); err == nil && found {
		return menu, nil
	} else if err != nil {
		logrus.WithError(err).Warn("Menu cache read failed")
	}
	if err := s.db.WithContext(ctx).Find(&menu).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	if err := utils.SetCache(ctx, s.rdb, menuCacheKey, menu, utils.CacheTTL); err != nil {
		logrus.WithError(err).Warn("Menu cache write failed")
	}
	return menu, nil
}

// CreateFood stores a new food item. Name, category, price and image are required.
func (s *CatalogService) CreateFood(ctx context.Context, in NewFood) (domain.Food, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Image) == "" || in.Price == nil {
		return domain.Food{}, newError(ErrValidation, "All fields are required")
	}
	if *in.Price < 0 {
		return domain.Food{}, newError(ErrValidation, "Price must not be negative")
	}
	food := domain.Food{
		Name:        in.Name,
		Image:       in.Image,
		Price:       *in.Price,
		Description: in.Description,
		Category:    in.Category,
	}
	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return domain.Food{}, fmt.Errorf("create food: %w", err)
	}
	s.invalidateFood(ctx)
	return food, nil
}

// DeleteFood removes a food item. Unknown or malformed ids are a no-op.
func (s *CatalogService) DeleteFood(ctx context.Context, id string) error {
	canonical, err := domain.CanonicalID(id)
	if err != nil {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("id = ?", canonical).Delete(&domain.Food{}).Error; err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	s.invalidateFood(ctx)
	return nil
}

// cachedFood serves the food query from the cache entry named suffix in the
// current generation, filling it on a miss
func (s *CatalogService) cachedFood(ctx context.Context, suffix string, scope func(*gorm.DB) *gorm.DB) ([]domain.Food, error) {
	foods := []domain.Food{}
	gen, err := utils.CacheGeneration(ctx, s.rdb, foodGenKey)
	if err != nil {
		// Without a generation the cache cannot be trusted, go to the store
		logrus.WithError(err).Warn("Food cache generation read failed")
		return s.queryFood(ctx, scope)
	}
	key := fmt.Sprintf("%s%d:%s", foodCachePrefix, gen, suffix) // e.g. catalog:food:3:all
	if found, err := utils.GetCache(ctx, s.rdb, key, &foods); err == nil && found {
		return foods, nil
	} else if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Food cache read failed")
	}
	foods, err = s.queryFood(ctx, scope)
	if err != nil {
		return nil, err
	}
	if err := utils.SetCache(ctx, s.rdb, key, foods, utils.CacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Food cache write failed")
	}
	return foods, nil
}

func (s *CatalogService) queryFood(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.Food, error) {
	foods := []domain.Food{}
	if err := scope(s.db.WithContext(ctx).Model(&domain.Food{})).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list food: %w", err)
	}
	return foods, nil
}

// invalidateFood runs after the write has committed. Bumping the generation
// retires every entry at once; the prefix sweep only reclaims memory.
func (s *CatalogService) invalidateFood(ctx context.Context) {
	if err := utils.BumpCacheGeneration(ctx, s.rdb, foodGenKey); err != nil {
		logrus.WithError(err).Warn("Food cache generation bump failed")
	}
	if err := utils.DeleteCachePrefix(ctx, s.rdb, foodCachePrefix); err != nil {
		logrus.WithError(err).Warn("Food cache invalidation failed")
	}
}

// likePattern lowers term and wraps it for a substring LIKE with '!' as escape
func likePattern(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
