package entity

import "github.com/shopspring/decimal"

// CatalogEntry represents the catalog table: one supplier offer for a product
// with a unit price and the maximum quantity purchasable from that supplier.
// (supplier_id, product_id) is unique in practice but not enforced here.
type CatalogEntry struct {
	CatalogID   uint            `gorm:"column:catalog_id;primaryKey;autoIncrement" json:"catalog_id"`
	SupplierID  uint            `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	ProductID   uint            `gorm:"column:product_id;not null;index" json:"product_id"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	MaxQuantity int             `gorm:"column:max_quantity;not null;default:0" json:"max_quantity"`
}

func (CatalogEntry) TableName() string {
	return "catalog"
}
