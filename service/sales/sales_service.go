package sales

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventory.GO/core/cache"
	entity "inventory.GO/model/entity"
	salesEntity "inventory.GO/model/entity/sales"
	inventoryRepo "inventory.GO/model/repository/inventory"
	"inventory.GO/service/allocation"
)

// ErrInsufficientStock is returned when the requested sale quantity exceeds
// the on-hand total for the product. The transaction rolls back; no alert is
// emitted on the sell path.
var ErrInsufficientStock = errors.New("sales: insufficient stock")

// ErrInvalidQuantity is returned for non-positive sale quantities.
var ErrInvalidQuantity = errors.New("sales: quantity must be positive")

// Service handles the sell/consume path: decrement inventory and post an
// order line as one atomic step.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PlaceSale sells quantity units of a product against an existing sales
// order. Lots drain oldest first; the whole operation commits atomically or
// not at all.
func (s *Service) PlaceSale(orderID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
			return fmt.Errorf("load product %d: %w", productID, err)
		}
		var order salesEntity.SalesOrder
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			return fmt.Errorf("load sales order %d: %w", orderID, err)
		}

		lots := inventoryRepo.NewInventoryRepository(tx)
		held, err := lots.LotsByProductForUpdate(productID)
		if err != nil {
			return fmt.Errorf("lock inventory: %w", err)
		}
		total := 0
		for _, lot := range held {
			total += lot.Quantity
		}
		if total < quantity {
			return ErrInsufficientStock
		}

		remaining := quantity
		for _, lot := range held {
			if remaining == 0 {
				break
			}
			take := lot.Quantity
			if take > remaining {
				take = remaining
			}
			if take == 0 {
				continue
			}
			if err := lots.DrainLot(lot.InventoryID, take, take*product.ShelfSpace); err != nil {
				return fmt.Errorf("drain lot %d: %w", lot.InventoryID, err)
			}
			remaining -= take
		}

		line := salesEntity.SalesOrderLine{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.MarketPrice,
		}
		if err := tx.Create(&line).Error; err != nil {
			return fmt.Errorf("create order line: %w", err)
		}

		lineTotal := product.MarketPrice.Mul(decimal.NewFromInt(int64(quantity)))
		if err := tx.Model(&salesEntity.SalesOrder{}).
			Where("order_id = ?", orderID).
			Update("total_price", gorm.Expr("total_price + ?", lineTotal)).Error; err != nil {
			return fmt.Errorf("update order total: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.GetInstance().DeleteByTag(allocation.TagInventory)
	return nil
}
