package sales

import "github.com/shopspring/decimal"

// SalesOrderLine represents the sales_order_details table.
type SalesOrderLine struct {
	LineID    uint            `gorm:"column:line_id;primaryKey;autoIncrement" json:"line_id"`
	OrderID   uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:price_for_product;type:decimal(12,2);not null" json:"unit_price"`
}

func (SalesOrderLine) TableName() string {
	return "sales_order_details"
}
