package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/models"
)

func TestRecordMovementValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)
	product := createProduct(t, db, "WATER", 10, 5)

	_, err := svc.RecordMovement(product.ID, models.MovementOut, 0, "sale", nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.RecordMovement(product.ID, models.MovementIn, -3, "restock", nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.RecordMovement(product.ID, "sideways", 3, "sale", nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestStockScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)
	product := createProduct(t, db, "WATER", 10, 5)

	m, err := svc.RecordMovement(product.ID, models.MovementOut, 3, "pos sale", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, m.StockBefore)
	assert.Equal(t, 7, m.StockAfter)

	low, err := svc.GetLowStock()
	require.NoError(t, err)
	assert.Empty(t, low)

	m, err = svc.RecordMovement(product.ID, models.MovementOut, 5, "pos sale", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, m.StockAfter)

	low, err = svc.GetLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "WATER", low[0].Code)

	_, err = svc.RecordMovement(product.ID, models.MovementOut, 5, "pos sale", nil)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)
}

func TestStockLedgerConsistency(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)
	product := createProduct(t, db, "SOAP", 0, 3)

	steps := []struct {
		dir models.MovementDirection
		qty int
	}{
		{models.MovementIn, 20},
		{models.MovementOut, 4},
		{models.MovementIn, 6},
		{models.MovementOut, 10},
		{models.MovementOut, 2},
	}
	for _, step := range steps {
		_, err := svc.RecordMovement(product.ID, step.dir, step.qty, "test", nil)
		require.NoError(t, err)
	}

	movements, err := svc.ListMovements(product.ID)
	require.NoError(t, err)
	require.Len(t, movements, len(steps))

	signed := 0
	for _, m := range movements {
		if m.Direction == models.MovementIn {
			signed += m.Quantity
		} else {
			signed -= m.Quantity
		}
	}

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, signed, reloaded.Stock)
	assert.Equal(t, 10, reloaded.Stock)

	// newest first, and each row's snapshots chain onto the previous one
	for i := 0; i+1 < len(movements); i++ {
		assert.Equal(t, movements[i+1].StockAfter, movements[i].StockBefore)
	}
}

func TestRecordMovementAttributesStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)
	product := createProduct(t, db, "TOWEL", 5, 1)

	admin := models.Admin{FullName: "Front Desk", Username: "frontdesk"}
	require.NoError(t, db.Create(&admin).Error)

	m, err := svc.RecordMovement(product.ID, models.MovementIn, 2, "delivery", &admin.ID)
	require.NoError(t, err)
	require.NotNil(t, m.AdminID)
	assert.Equal(t, admin.ID, *m.AdminID)
}
