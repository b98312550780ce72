package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus for purchase orders. A header transitions exactly once after
// creation: Pending -> Rejected or Pending -> AddedToInventory.
type OrderStatus string

const (
	StatusPending          OrderStatus = "Pending"
	StatusRejected         OrderStatus = "Rejected"
	StatusAddedToInventory OrderStatus = "AddedToInventory"
)

// PurchaseOrder represents the purchase_orders table. SupplierID is the
// supplier of the first offer touched by the price-ordered snapshot, a legacy
// artifact of the original schema kept for compatibility.
type PurchaseOrder struct {
	PoID       uint            `gorm:"column:po_id;primaryKey;autoIncrement" json:"po_id"`
	SupplierID uint            `gorm:"column:supplier_id;not null" json:"supplier_id"`
	OrderDate  time.Time       `gorm:"column:order_date;type:date;not null" json:"order_date"`
	Status     OrderStatus     `gorm:"column:status;type:varchar(20);not null;default:'Pending'" json:"status"`
	TotalCost  decimal.Decimal `gorm:"column:total_cost;type:decimal(12,2);not null;default:0" json:"total_cost"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}
