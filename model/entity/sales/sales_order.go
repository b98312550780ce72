package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder represents the sales_orders table. The sell path posts lines
// against an existing order; order lifecycle itself is owned by the CRUD layer.
type SalesOrder struct {
	OrderID      uint            `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID   uint            `gorm:"column:customer_id;not null" json:"customer_id"`
	OrderDate    time.Time       `gorm:"column:order_date;type:date;not null" json:"order_date"`
	DeliveryDate *time.Time      `gorm:"column:delivery_date;type:date" json:"delivery_date,omitempty"`
	Status       string          `gorm:"column:status;type:varchar(20);not null;default:'Open'" json:"status"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price;type:decimal(12,2);not null;default:0" json:"total_price"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}
