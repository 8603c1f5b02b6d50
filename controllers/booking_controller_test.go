package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dormitory-backend/config"
	"dormitory-backend/models"
	"dormitory-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAvailabilityRouter stands up a booking controller over an in-memory
// database holding one room booked for 2026-01-10 .. 2026-01-15.
func newAvailabilityRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	audit := models.Audit{IsActive: true, CreatedBy: 1, CreatedTime: time.Now().UTC()}
	user := models.User{Name: "Admin", Email: "admin@test.local", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	building := models.Building{Name: "Building A", Audit: audit}
	require.NoError(t, db.Create(&building).Error)
	floor := models.Floor{Name: "1st Floor", BuildingID: building.ID, Audit: audit}
	require.NoError(t, db.Create(&floor).Error)
	category := models.RoomCategory{Name: "Standard", CategoryBasedPrice: "1500", NoOfPerson: 2, Audit: audit}
	require.NoError(t, db.Create(&category).Error)
	room := models.Room{
		Name:            "101",
		RoomCategoryID:  category.ID,
		FloorID:         floor.ID,
		BuildingID:      building.ID,
		IsRoomAvailable: true,
		Audit:           audit,
	}
	require.NoError(t, db.Create(&room).Error)
	person := models.Person{
		Name:             "Rahim",
		CompanyName:      "Test Co",
		PersonalPhoneNo:  "01711111111",
		CompanyPhoneNo:   "0000",
		Email:            "rahim@test.local",
		NidBirthPassport: "NID-1",
		CountryName:      "Bangladesh",
		Audit:            audit,
	}
	require.NoError(t, db.Create(&person).Error)

	svc := services.NewBookingService(db)
	_, err = svc.Create(services.BookingInput{
		RoomID:    room.ID,
		PersonID:  person.ID,
		StartTime: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}, user.ID)
	require.NoError(t, err)

	bc := NewBookingController(svc)
	r := gin.New()
	r.GET("/api/admin/roomBooking/availableRoom", bc.AvailableRooms)
	return r
}

func getAvailable(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/roomBooking/availableRoom?"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAvailableRoomsQueryParams(t *testing.T) {
	r := newAvailabilityRouter(t)

	// The endpoint is addressed by searchByStartTime/searchByEndTime.
	w := getAvailable(r, "searchByStartTime=2026-01-16T00:00:00Z&searchByEndTime=2026-01-20T00:00:00Z")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roomName":"101"`)

	// Zone-less timestamps are accepted as UTC; this window overlaps the
	// seeded booking, so the only room is taken.
	w = getAvailable(r, "searchByStartTime=2026-01-12T00:00:00&searchByEndTime=2026-01-14T00:00:00")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No available rooms found for the selected time range.")

	w = getAvailable(r, "searchByStartTime=2026-01-16T00:00:00Z")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date range provided.")

	w = getAvailable(r, "searchByStartTime=not-a-time&searchByEndTime=2026-01-20T00:00:00Z")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date range provided.")
}
