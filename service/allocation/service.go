package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventory.GO/core/cache"
	entity "inventory.GO/model/entity"
	purchaseEntity "inventory.GO/model/entity/purchase"
	alertRepo "inventory.GO/model/repository/alert"
	catalogRepo "inventory.GO/model/repository/catalog"
	inventoryRepo "inventory.GO/model/repository/inventory"
	purchaseRepo "inventory.GO/model/repository/purchase"
	warehouseRepo "inventory.GO/model/repository/warehouse"
)

// ErrInvalidQuantity is returned for non-positive buy quantities.
var ErrInvalidQuantity = errors.New("allocation: quantity must be positive")

// TagInventory marks cache entries derived from committed inventory; a
// successful commit invalidates them.
const TagInventory = "inventory"

// BuyResult is the terminal outcome of a buy request. A rejection is a normal
// result, not an error: the order is committed as Rejected with its alert.
type BuyResult struct {
	OrderID   uint            `json:"order_id"`
	Accepted  bool            `json:"accepted"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Shortfall *Shortfall      `json:"shortfall,omitempty"`
}

// Service runs buy requests against the ledger. Each request executes in one
// transaction: snapshot reads, both plans, then commit or reject, so that no
// partial side effect ever survives.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PlaceBuyOrder sources quantity units of a product from the cheapest
// suppliers and distributes them across warehouses by free capacity. Both
// feasibility checks run before any inventory write; a shortfall on either
// side commits only the Rejected header and its alert.
func (s *Service) PlaceBuyOrder(productID uint, quantity int) (*BuyResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var result *BuyResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
			return fmt.Errorf("load product %d: %w", productID, err)
		}
		if product.ShelfSpace <= 0 {
			return fmt.Errorf("product %d has non-positive shelf space", productID)
		}

		offers, err := catalogRepo.NewCatalogRepository(tx).OffersByProductForUpdate(productID)
		if err != nil {
			return fmt.Errorf("catalog snapshot: %w", err)
		}
		capacities, err := warehouseRepo.NewWarehouseRepository(tx).CapacitiesByFreeDescForUpdate()
		if err != nil {
			return fmt.Errorf("capacity snapshot: %w", err)
		}

		// Header first, as the original schema expects: supplier_id records
		// the first offer of the price-ordered snapshot (legacy artifact).
		var headerSupplier uint
		if len(offers) > 0 {
			headerSupplier = offers[0].SupplierID
		}
		po := &purchaseEntity.PurchaseOrder{
			SupplierID: headerSupplier,
			OrderDate:  time.Now(),
			Status:     purchaseEntity.StatusPending,
			TotalCost:  decimal.Zero,
		}
		orders := purchaseRepo.NewPurchaseOrderRepository(tx)
		if err := orders.Create(po); err != nil {
			return fmt.Errorf("create purchase order: %w", err)
		}

		allocations, capacityShort := planWarehouses(capacities, product.ShelfSpace, quantity)
		lines, totalCost, supplyShort := planSuppliers(offers, quantity)

		alerts := alertRepo.NewAlertRepository(tx)
		if capacityShort > 0 || supplyShort > 0 {
			shortfall := &Shortfall{Cause: CauseCapacity, Requested: quantity, Unallocated: capacityShort}
			msg := fmt.Sprintf(
				"Warning: Not enough warehouse capacity for the entire order of %d units of product ID %d. PO rejected. Unallocated quantity: %d",
				quantity, productID, capacityShort)
			if capacityShort == 0 {
				shortfall = &Shortfall{Cause: CauseSupply, Requested: quantity, Unallocated: supplyShort}
				msg = fmt.Sprintf(
					"Warning: Not enough supplier capacity for the entire order of %d units of product ID %d. PO rejected. Unallocated quantity: %d",
					quantity, productID, supplyShort)
			}
			if err := orders.MarkRejected(po.PoID); err != nil {
				return fmt.Errorf("reject purchase order: %w", err)
			}
			if err := alerts.Record(entity.AlertEntityProduct, productID, msg, time.Now()); err != nil {
				return fmt.Errorf("record rejection alert: %w", err)
			}
			result = &BuyResult{OrderID: po.PoID, Accepted: false, TotalCost: decimal.Zero, Shortfall: shortfall}
			return nil
		}

		poLines := make([]purchaseEntity.PurchaseOrderLine, 0, len(lines))
		for _, l := range lines {
			poLines = append(poLines, purchaseEntity.PurchaseOrderLine{
				PoID:      po.PoID,
				CatalogID: l.CatalogID,
				Quantity:  l.Quantity,
				UnitCost:  l.UnitPrice,
			})
		}
		if err := orders.CreateLines(poLines); err != nil {
			return fmt.Errorf("create order lines: %w", err)
		}
		if err := orders.MarkCommitted(po.PoID, totalCost); err != nil {
			return fmt.Errorf("commit purchase order: %w", err)
		}

		lots := inventoryRepo.NewInventoryRepository(tx)
		for _, d := range pairLots(allocations, lines) {
			if err := lots.MergeLot(d.WarehouseID, productID, d.CatalogID, d.Quantity, d.Quantity*product.ShelfSpace); err != nil {
				return fmt.Errorf("merge inventory lot: %w", err)
			}
		}

		msg := fmt.Sprintf(
			"Purchase Order created with ID: %d for %d units of product ID %d. Inventory allocated across multiple warehouses.",
			po.PoID, quantity, productID)
		if err := alerts.Record(entity.AlertEntityPurchaseOrder, po.PoID, msg, time.Now()); err != nil {
			return fmt.Errorf("record acceptance alert: %w", err)
		}

		result = &BuyResult{OrderID: po.PoID, Accepted: true, TotalCost: totalCost}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Accepted {
		cache.GetInstance().DeleteByTag(TagInventory)
	}
	return result, nil
}
