package services

import (
	"fmt"

	"gorm.io/gorm"

	"hms-backend/models"
)

// StockService keeps Product.Stock equal to the signed sum of its movement
// ledger. The ledger row and the derived stock value are written in the same
// transaction under a product row lock, so concurrent out-movements serialize
// and the InsufficientStock check cannot race.
type StockService struct {
	DB *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{DB: db}
}

// RecordMovement appends a movement and updates the product's stock
// atomically. Quantity must be positive; out-movements may not take stock
// below zero.
func (s *StockService) RecordMovement(productID uint, direction models.MovementDirection, quantity int, reason string, adminID *uint) (*models.StockMovement, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if direction != models.MovementIn && direction != models.MovementOut {
		return nil, ErrInvalidQuantity
	}

	var movement models.StockMovement

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := lockForUpdate(tx).First(&product, productID).Error; err != nil {
			return err
		}

		before := product.Stock
		after := before + quantity
		if direction == models.MovementOut {
			if quantity > before {
				return ErrInsufficientStock
			}
			after = before - quantity
		}

		movement = models.StockMovement{
			ProductID:   product.ID,
			Direction:   direction,
			Quantity:    quantity,
			Reason:      reason,
			StockBefore: before,
			StockAfter:  after,
			AdminID:     adminID,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return fmt.Errorf("failed to append stock movement: %w", err)
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("stock", after).Error; err != nil {
			return fmt.Errorf("failed to update stock for product %d: %w", product.ID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &movement, nil
}

// GetLowStock returns products at or below their restock threshold. Derived
// on read; there is no stored "is low" flag to go stale.
func (s *StockService) GetLowStock() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Where("stock <= min_stock").
		Order("code ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}
	return products, nil
}

// ListMovements returns the ledger newest first, optionally scoped to one
// product.
func (s *StockService) ListMovements(productID uint) ([]models.StockMovement, error) {
	q := s.DB.Preload("Product").Order("id DESC")
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}

	var movements []models.StockMovement
	if err := q.Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, nil
}
