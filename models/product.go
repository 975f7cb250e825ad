package models

import "gorm.io/gorm"

// Product.Stock is a materialized view over the movement ledger: it is only
// ever changed as a side effect of appending a StockMovement.
type Product struct {
	gorm.Model

	Code     string  `gorm:"uniqueIndex;size:50" json:"code"`
	Name     string  `gorm:"size:255" json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `gorm:"column:min_stock;default:0" json:"min_stock"`
}

// Low reports whether the product is at or below its restock threshold.
func (p *Product) Low() bool {
	return p.Stock <= p.MinStock
}
