package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "inventory.GO/model/entity"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// OffersByProduct returns the price-ordered supplier offers for a product,
// cheapest first, ties broken by catalog id so the ordering is deterministic.
func (r *CatalogRepository) OffersByProduct(productID uint) ([]entity.CatalogEntry, error) {
	var offers []entity.CatalogEntry
	err := r.db.
		Where("product_id = ?", productID).
		Order("price ASC, catalog_id ASC").
		Find(&offers).Error
	return offers, err
}

// OffersByProductForUpdate is OffersByProduct with row locks, for use inside
// an allocation transaction. Row locking is a MySQL concern; sqlite (tests)
// is single-writer and rejects FOR UPDATE syntax.
func (r *CatalogRepository) OffersByProductForUpdate(productID uint) ([]entity.CatalogEntry, error) {
	tx := r.db
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var offers []entity.CatalogEntry
	err := tx.
		Where("product_id = ?", productID).
		Order("price ASC, catalog_id ASC").
		Find(&offers).Error
	return offers, err
}

// TotalSupply sums the max purchasable quantity across all offers for a product.
func (r *CatalogRepository) TotalSupply(productID uint) (int, error) {
	var total int
	err := r.db.Model(&entity.CatalogEntry{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(max_quantity), 0)").
		Scan(&total).Error
	return total, err
}
