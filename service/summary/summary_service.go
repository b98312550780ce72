package summary

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventory.GO/config"
	"inventory.GO/core/cache"
	"inventory.GO/service/allocation"
)

const (
	cacheKey = "dashboard:summary"
	cacheTTL = 60 // seconds
)

// Summary is the dashboard read model, computed on demand from committed
// state rather than kept as refreshed counters.
type Summary struct {
	InventoryRemaining  int             `json:"inventory_remaining"`
	ProductsOnSale      int64           `json:"products_on_sale"`
	WarehouseCount      int64           `json:"warehouse_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the dashboard summary. Reads go through the in-process cache
// (invalidated on every inventory commit) and redis when configured.
func (s *Service) Get() (*Summary, error) {
	if v, ok := cache.GetInstance().Get(cacheKey); ok {
		if sum, isSum := v.(*Summary); isSum {
			return sum, nil
		}
	}
	if config.RedisClient != nil {
		if raw, err := config.RedisClient.Get(config.RedisCtx(), cacheKey).Result(); err == nil {
			var sum Summary
			if err := json.Unmarshal([]byte(raw), &sum); err == nil {
				return &sum, nil
			}
		}
	}

	sum, err := s.compute()
	if err != nil {
		return nil, err
	}

	cache.GetInstance().Set(cacheKey, sum, cacheTTL, []string{allocation.TagInventory})
	if config.RedisClient != nil {
		if raw, err := json.Marshal(sum); err == nil {
			config.RedisClient.Set(config.RedisCtx(), cacheKey, raw, cacheTTL*time.Second)
		}
	}
	return sum, nil
}

func (s *Service) compute() (*Summary, error) {
	var sum Summary

	if err := s.db.Raw(`SELECT COALESCE(SUM(quantity), 0) FROM inventory`).
		Scan(&sum.InventoryRemaining).Error; err != nil {
		return nil, fmt.Errorf("inventory remaining: %w", err)
	}
	if err := s.db.Raw(`SELECT COUNT(DISTINCT product_id) FROM catalog`).
		Scan(&sum.ProductsOnSale).Error; err != nil {
		return nil, fmt.Errorf("products on sale: %w", err)
	}
	if err := s.db.Raw(`SELECT COUNT(*) FROM warehouses`).
		Scan(&sum.WarehouseCount).Error; err != nil {
		return nil, fmt.Errorf("warehouse count: %w", err)
	}

	var value decimal.NullDecimal
	if err := s.db.Raw(`
		SELECT SUM(i.quantity * c.price)
		FROM inventory i
		JOIN catalog c ON c.catalog_id = i.catalog_id`).
		Scan(&value).Error; err != nil {
		return nil, fmt.Errorf("total inventory value: %w", err)
	}
	if value.Valid {
		sum.TotalInventoryValue = value.Decimal
	} else {
		sum.TotalInventoryValue = decimal.Zero
	}
	return &sum, nil
}
