package allocation

import (
	"github.com/shopspring/decimal"

	entity "inventory.GO/model/entity"
	warehouseRepo "inventory.GO/model/repository/warehouse"
)

// ShortfallCause distinguishes which side of the plan could not cover the
// requested quantity.
type ShortfallCause string

const (
	CauseCapacity ShortfallCause = "capacity"
	CauseSupply   ShortfallCause = "supply"
)

// Shortfall is the unallocated remainder of an infeasible request.
type Shortfall struct {
	Cause       ShortfallCause `json:"cause"`
	Requested   int            `json:"requested"`
	Unallocated int            `json:"unallocated"`
}

// WarehouseAllocation assigns part of the purchased quantity to one warehouse.
type WarehouseAllocation struct {
	WarehouseID uint `json:"warehouse_id"`
	Quantity    int  `json:"quantity"`
}

// SupplierLine sources part of the purchased quantity from one catalog offer.
type SupplierLine struct {
	CatalogID  uint            `json:"catalog_id"`
	SupplierID uint            `json:"supplier_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// Plan is a complete allocation: where the units go, who they come from and
// what they cost. Computed before any write happens.
type Plan struct {
	Allocations []WarehouseAllocation `json:"allocations"`
	Lines       []SupplierLine        `json:"lines"`
	TotalCost   decimal.Decimal       `json:"total_cost"`
}

// planWarehouses distributes requested units across warehouses by descending
// free capacity. Each warehouse can absorb floor(free / shelfSpace) units.
// Returns the partial allocation and the unallocated remainder.
func planWarehouses(capacities []warehouseRepo.Capacity, shelfSpace, requested int) ([]WarehouseAllocation, int) {
	remaining := requested
	var allocations []WarehouseAllocation
	for _, c := range capacities {
		if remaining == 0 {
			break
		}
		allocatable := c.Free() / shelfSpace
		if allocatable <= 0 {
			continue
		}
		take := allocatable
		if take > remaining {
			take = remaining
		}
		allocations = append(allocations, WarehouseAllocation{WarehouseID: c.WarehouseID, Quantity: take})
		remaining -= take
	}
	return allocations, remaining
}

// planSuppliers sources requested units from the price-ordered offer list,
// cheapest first, capped by each offer's max quantity. Returns the lines, the
// accumulated cost and the unsourced remainder.
func planSuppliers(offers []entity.CatalogEntry, requested int) ([]SupplierLine, decimal.Decimal, int) {
	remaining := requested
	total := decimal.Zero
	var lines []SupplierLine
	for _, o := range offers {
		if remaining == 0 {
			break
		}
		take := o.MaxQuantity
		if take > remaining {
			take = remaining
		}
		if take <= 0 {
			continue
		}
		lines = append(lines, SupplierLine{
			CatalogID:  o.CatalogID,
			SupplierID: o.SupplierID,
			Quantity:   take,
			UnitPrice:  o.Price,
		})
		total = total.Add(o.Price.Mul(decimal.NewFromInt(int64(take))))
		remaining -= take
	}
	return lines, total, remaining
}

// lotDelta is one inventory mutation of a committed plan, keyed the way lots
// are keyed.
type lotDelta struct {
	WarehouseID uint
	CatalogID   uint
	Quantity    int
}

// pairLots merges the warehouse and supplier plans into per-lot quantities.
// Both plans sum to the same total, so a two-pointer walk splits them into
// (warehouse, offer) pairs deterministically.
func pairLots(allocations []WarehouseAllocation, lines []SupplierLine) []lotDelta {
	var deltas []lotDelta
	li := 0
	lineLeft := 0
	if len(lines) > 0 {
		lineLeft = lines[0].Quantity
	}
	for _, a := range allocations {
		allocLeft := a.Quantity
		for allocLeft > 0 && li < len(lines) {
			take := allocLeft
			if take > lineLeft {
				take = lineLeft
			}
			deltas = append(deltas, lotDelta{
				WarehouseID: a.WarehouseID,
				CatalogID:   lines[li].CatalogID,
				Quantity:    take,
			})
			allocLeft -= take
			lineLeft -= take
			if lineLeft == 0 {
				li++
				if li < len(lines) {
					lineLeft = lines[li].Quantity
				}
			}
		}
	}
	return deltas
}
