package models

import (
	"fmt"
	"time"
)

type MovementDirection string

const (
	MovementIn  MovementDirection = "in"
	MovementOut MovementDirection = "out"
)

func ParseMovementDirection(s string) (MovementDirection, error) {
	switch MovementDirection(s) {
	case MovementIn, MovementOut:
		return MovementDirection(s), nil
	default:
		return "", fmt.Errorf("unknown movement direction: %s", s)
	}
}

// StockMovement is append-only: no UpdatedAt, no soft delete. StockBefore and
// StockAfter snapshot the product stock around the movement for auditing.
type StockMovement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProductID uint              `gorm:"index;not null" json:"product_id"`
	Direction MovementDirection `gorm:"type:varchar(8);not null" json:"direction"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	Reason    string            `gorm:"size:255" json:"reason"`

	StockBefore int `gorm:"column:stock_before" json:"stock_before"`
	StockAfter  int `gorm:"column:stock_after" json:"stock_after"`

	AdminID *uint `gorm:"index" json:"admin_id,omitempty"`

	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}
