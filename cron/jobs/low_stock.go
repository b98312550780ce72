package jobs

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	entity "inventory.GO/model/entity"
	alertRepo "inventory.GO/model/repository/alert"
)

var (
	dbMu sync.RWMutex
	db   *gorm.DB
)

// SetDB injects the database handle jobs run against. Called once at startup;
// jobs are no-ops until then. (This package cannot import config: config's
// job map imports this package.)
func SetDB(d *gorm.DB) {
	dbMu.Lock()
	defer dbMu.Unlock()
	db = d
}

func getDB() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

type lowStockRow struct {
	ProductID      uint
	Name           string
	SafeStockLevel int
	CurrentStock   int
}

// LowStockJob scans for products whose on-hand total is below their safe
// stock level and records one alert per offending product.
func LowStockJob(args ...string) {
	d := getDB()
	if d == nil {
		log.Println("lowstockjob: no database configured, skipping")
		return
	}

	const query = `
		SELECT p.product_id, p.name, p.safe_stock_level,
		       COALESCE(SUM(i.quantity), 0) AS current_stock
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.product_id
		GROUP BY p.product_id, p.name, p.safe_stock_level
		HAVING COALESCE(SUM(i.quantity), 0) < p.safe_stock_level`

	var rows []lowStockRow
	if err := d.Raw(query).Scan(&rows).Error; err != nil {
		log.Printf("lowstockjob: scan failed: %v", err)
		return
	}

	alerts := alertRepo.NewAlertRepository(d)
	for _, r := range rows {
		msg := fmt.Sprintf("Low stock: product %q (ID %d) holds %d units, safe level is %d. Restock needed: %d",
			r.Name, r.ProductID, r.CurrentStock, r.SafeStockLevel, r.SafeStockLevel-r.CurrentStock)
		if err := alerts.Record(entity.AlertEntityProduct, r.ProductID, msg, time.Now()); err != nil {
			log.Printf("lowstockjob: alert for product %d failed: %v", r.ProductID, err)
		}
	}
	if len(rows) > 0 {
		log.Printf("lowstockjob: recorded %d low-stock alerts", len(rows))
	}
}
