package entity

import "time"

// Alert entity types.
const (
	AlertEntityProduct       = "Product"
	AlertEntityPurchaseOrder = "PurchaseOrder"
)

// Alert represents the alerts table. Append-only, immutable once written;
// exactly one row per terminal purchase-order outcome.
type Alert struct {
	AlertID    uint      `gorm:"column:alert_id;primaryKey;autoIncrement" json:"alert_id"`
	EntityType string    `gorm:"column:entity_type;type:varchar(32);not null" json:"entity_type"`
	EntityID   uint      `gorm:"column:entity_id;not null" json:"entity_id"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	AlertDate  time.Time `gorm:"column:alert_date;not null" json:"alert_date"`
}

func (Alert) TableName() string {
	return "alerts"
}
