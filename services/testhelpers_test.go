package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"dormitory-backend/config"
	"dormitory-backend/models"
	"dormitory-backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	utils.InitJWT("test-secret")
}

// newTestDB opens an isolated in-memory sqlite database named after the test
// so parallel tests never share state, and applies the full migration.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Admin",
		Email:    "admin@test.local",
		Password: "not-a-real-hash",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedBuilding(t *testing.T, db *gorm.DB, name string, createdBy uint) models.Building {
	t.Helper()
	building := models.Building{Name: name, Audit: newAudit(createdBy)}
	require.NoError(t, db.Create(&building).Error)
	return building
}

func seedFloor(t *testing.T, db *gorm.DB, name string, buildingID, createdBy uint) models.Floor {
	t.Helper()
	floor := models.Floor{Name: name, BuildingID: buildingID, Audit: newAudit(createdBy)}
	require.NoError(t, db.Create(&floor).Error)
	return floor
}

func seedCategory(t *testing.T, db *gorm.DB, name string, createdBy uint) models.RoomCategory {
	t.Helper()
	category := models.RoomCategory{
		Name:               name,
		CategoryBasedPrice: "1500",
		NoOfPerson:         2,
		Audit:              newAudit(createdBy),
	}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedRoom(t *testing.T, db *gorm.DB, name string, buildingID, floorID, categoryID, createdBy uint) models.Room {
	t.Helper()
	room := models.Room{
		Name:            name,
		RoomCategoryID:  categoryID,
		FloorID:         floorID,
		BuildingID:      buildingID,
		IsRoomAvailable: true,
		Audit:           newAudit(createdBy),
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedPerson(t *testing.T, db *gorm.DB, name, phone string, createdBy uint) models.Person {
	t.Helper()
	person := models.Person{
		Name:             name,
		CompanyName:      "Test Co",
		PersonalPhoneNo:  phone,
		CompanyPhoneNo:   "0000",
		Email:            phone + "@test.local",
		NidBirthPassport: "NID-" + phone,
		CountryName:      "Bangladesh",
		Audit:            newAudit(createdBy),
	}
	require.NoError(t, db.Create(&person).Error)
	return person
}

// day pins a deterministic timeline for interval tests.
func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func bookingInput(roomID, personID uint, start, end time.Time) BookingInput {
	return BookingInput{
		RoomID:    roomID,
		PersonID:  personID,
		StartTime: start,
		EndTime:   end,
	}
}

// requireServiceError asserts err carries the given status and message.
func requireServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, status, svcErr.Status)
	require.Equal(t, message, svcErr.Message)
}
