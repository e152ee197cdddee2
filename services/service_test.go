package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database capped at one connection so
// transactions from concurrent goroutines serialize the same way contending
// row locks do in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Charity{},
		&models.CreditTransaction{},
		&models.Donation{},
		&models.Story{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.UserRole, credits int) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
		Credits:  credits,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCharity(t *testing.T, db *gorm.DB, name string, status models.CharityStatus) (*models.User, *models.Charity) {
	t.Helper()

	owner := createUser(t, db, name+"-owner", models.RoleCharity, 0)
	charity := models.Charity{
		UserID:      owner.ID,
		Name:        name,
		Description: "test charity",
		Status:      status,
	}
	require.NoError(t, db.Create(&charity).Error)
	return owner, &charity
}

func currentBalance(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.Credits
}
