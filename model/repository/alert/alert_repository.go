package alert

import (
	"time"

	"gorm.io/gorm"

	entity "inventory.GO/model/entity"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Record appends one alert row. Alerts are immutable once written.
func (r *AlertRepository) Record(entityType string, entityID uint, message string, at time.Time) error {
	return r.db.Create(&entity.Alert{
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		AlertDate:  at,
	}).Error
}

// ListSince returns alerts with id greater than sinceID, oldest first.
func (r *AlertRepository) ListSince(sinceID uint) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.Where("alert_id > ?", sinceID).Order("alert_id ASC").Find(&alerts).Error
	return alerts, err
}
