package entity

import "github.com/shopspring/decimal"

// Product represents the products table. Immutable reference data during an
// allocation run; ShelfSpace is the capacity consumed per stored unit.
type Product struct {
	ProductID         uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name              string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description       string          `gorm:"column:description;type:text" json:"description,omitempty"`
	MarketPrice       decimal.Decimal `gorm:"column:market_price;type:decimal(12,2);not null;default:0" json:"market_price"`
	SafeStockLevel    int             `gorm:"column:safe_stock_level;not null;default:0" json:"safe_stock_level"`
	HealthyStockLevel int             `gorm:"column:healthy_stock_level;not null;default:0" json:"healthy_stock_level"`
	ShelfSpace        int             `gorm:"column:shelf_space;not null" json:"shelf_space"`
}

func (Product) TableName() string {
	return "products"
}
