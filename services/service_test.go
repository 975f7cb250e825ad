package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hms-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Room{},
		&models.Booking{},
		&models.RoomStatusLog{},
		&models.Product{},
		&models.StockMovement{},
		&models.PaymentSlip{},
	))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createRoom(t *testing.T, db *gorm.DB, number string, capacity int, price float64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber: number,
		Floor:      "1",
		Capacity:   capacity,
		Price:      price,
		Status:     models.RoomAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func createProduct(t *testing.T, db *gorm.DB, code string, stock, minStock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Code:     code,
		Name:     "Product " + code,
		Price:    20,
		Stock:    stock,
		MinStock: minStock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return &room
}

func reloadBooking(t *testing.T, db *gorm.DB, id uint) *models.Booking {
	t.Helper()
	var booking models.Booking
	require.NoError(t, db.First(&booking, id).Error)
	return &booking
}
