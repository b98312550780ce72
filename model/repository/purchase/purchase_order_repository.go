package purchase

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	purchaseEntity "inventory.GO/model/entity/purchase"
)

type PurchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// Create inserts a new header. The po_id is populated on return.
func (r *PurchaseOrderRepository) Create(po *purchaseEntity.PurchaseOrder) error {
	return r.db.Create(po).Error
}

// MarkRejected moves a Pending header to Rejected.
func (r *PurchaseOrderRepository) MarkRejected(poID uint) error {
	return r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Where("po_id = ? AND status = ?", poID, purchaseEntity.StatusPending).
		Update("status", purchaseEntity.StatusRejected).Error
}

// MarkCommitted moves a Pending header to AddedToInventory with its final cost.
func (r *PurchaseOrderRepository) MarkCommitted(poID uint, totalCost decimal.Decimal) error {
	return r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Where("po_id = ? AND status = ?", poID, purchaseEntity.StatusPending).
		Updates(map[string]interface{}{
			"status":     purchaseEntity.StatusAddedToInventory,
			"total_cost": totalCost,
		}).Error
}

// CreateLines inserts all line rows of an order.
func (r *PurchaseOrderRepository) CreateLines(lines []purchaseEntity.PurchaseOrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.Create(&lines).Error
}

// FindByID returns a header.
func (r *PurchaseOrderRepository) FindByID(poID uint) (*purchaseEntity.PurchaseOrder, error) {
	var po purchaseEntity.PurchaseOrder
	if err := r.db.First(&po, "po_id = ?", poID).Error; err != nil {
		return nil, err
	}
	return &po, nil
}

// LinesByOrder returns the line rows of an order.
func (r *PurchaseOrderRepository) LinesByOrder(poID uint) ([]purchaseEntity.PurchaseOrderLine, error) {
	var lines []purchaseEntity.PurchaseOrderLine
	err := r.db.Where("po_id = ?", poID).Order("po_line_id ASC").Find(&lines).Error
	return lines, err
}

// List returns headers newest first.
func (r *PurchaseOrderRepository) List(limit int) ([]purchaseEntity.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 100
	}
	var orders []purchaseEntity.PurchaseOrder
	err := r.db.Order("po_id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
