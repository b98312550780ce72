package purchase

import "github.com/shopspring/decimal"

// PurchaseOrderLine represents the purchase_order_details table: one row per
// supplier offer actually drawn from. UnitCost is the offer price at the time
// the order was placed.
type PurchaseOrderLine struct {
	PoLineID  uint            `gorm:"column:po_line_id;primaryKey;autoIncrement" json:"po_line_id"`
	PoID      uint            `gorm:"column:po_id;not null;index" json:"po_id"`
	CatalogID uint            `gorm:"column:catalog_id;not null" json:"catalog_id"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitCost  decimal.Decimal `gorm:"column:cost_for_product;type:decimal(12,2);not null" json:"unit_cost"`
}

func (PurchaseOrderLine) TableName() string {
	return "purchase_order_details"
}
