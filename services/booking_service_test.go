package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	svc    *BookingService
	user   uint
	person uint
	room1  uint
	room2  uint
}

func newBookingFixture(t *testing.T) (*bookingFixture, *BookingService) {
	db := newTestDB(t)
	user := seedUser(t, db)
	building := seedBuilding(t, db, "Building A", user.ID)
	floor := seedFloor(t, db, "1st Floor", building.ID, user.ID)
	category := seedCategory(t, db, "Standard", user.ID)
	room1 := seedRoom(t, db, "101", building.ID, floor.ID, category.ID, user.ID)
	room2 := seedRoom(t, db, "102", building.ID, floor.ID, category.ID, user.ID)
	person := seedPerson(t, db, "Rahim", "01711111111", user.ID)

	svc := NewBookingService(db)
	return &bookingFixture{
		svc:    svc,
		user:   user.ID,
		person: person.ID,
		room1:  room1.ID,
		room2:  room2.ID,
	}, svc
}

func TestBookingCreateRejectsOverlap(t *testing.T) {
	fx, svc := newBookingFixture(t)

	first, err := svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Equal(t, "[]", string(first.PaidItems))

	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(12), day(18)), fx.user)
	requireServiceError(t, err, 409, "Room is already booked for the selected time range.")

	// Intervals are half-open, so a stay starting exactly when the previous
	// one ends is not a conflict.
	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(15), day(20)), fx.user)
	require.NoError(t, err)

	// A different room is unaffected.
	_, err = svc.Create(bookingInput(fx.room2, fx.person, day(12), day(18)), fx.user)
	require.NoError(t, err)
}

func TestBookingCreateValidation(t *testing.T) {
	fx, svc := newBookingFixture(t)

	_, err := svc.Create(bookingInput(fx.room1, fx.person, day(15), day(15)), fx.user)
	requireServiceError(t, err, 400, "Invalid room booking requirement's info.")

	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(15), day(10)), fx.user)
	requireServiceError(t, err, 400, "Invalid room booking requirement's info.")

	_, err = svc.Create(bookingInput(9999, fx.person, day(10), day(15)), fx.user)
	requireServiceError(t, err, 404, "Room not found or deleted.")

	_, err = svc.Create(bookingInput(fx.room1, 9999, day(10), day(15)), fx.user)
	requireServiceError(t, err, 404, "Person not found or deleted.")

	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), 9999)
	requireServiceError(t, err, 404, "User not found")
}

func TestBookingUpdateExcludesItself(t *testing.T) {
	fx, svc := newBookingFixture(t)

	booking, err := svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)

	// Re-saving the same interval must not collide with the booking itself.
	updated, err := svc.Update(booking.ID, bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, updated.ID)

	// Moving onto another booking's window is still rejected.
	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(20), day(25)), fx.user)
	require.NoError(t, err)
	_, err = svc.Update(booking.ID, bookingInput(fx.room1, fx.person, day(18), day(22)), fx.user)
	requireServiceError(t, err, 409, "Room is already booked for the selected time range.")

	_, err = svc.Update(9999, bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	requireServiceError(t, err, 404, "Room booking not found or inactive.")
}

func TestBookingSoftDeleteFreesTheRoom(t *testing.T) {
	fx, svc := newBookingFixture(t)

	booking, err := svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)

	deleted, err := svc.SoftDelete(booking.ID, fx.user)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	_, err = svc.SoftDelete(booking.ID, fx.user)
	requireServiceError(t, err, 404, "Booked room not found or already inactive")

	// The cancelled interval no longer blocks a new reservation.
	_, err = svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)
}

func TestFindAvailableRooms(t *testing.T) {
	fx, svc := newBookingFixture(t)

	_, err := svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)

	rooms, err := svc.FindAvailableRooms(day(12), day(14))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, fx.room2, rooms[0].RoomID)
	assert.Equal(t, "102", rooms[0].RoomName)
	assert.Equal(t, "Building A", rooms[0].BuildingName)
	assert.Equal(t, "Standard", rooms[0].RoomCategoryName)
	assert.Equal(t, "1500", rooms[0].RoomPrice)
	assert.Equal(t, 2, rooms[0].RoomWisePerson)

	// Query window touching the booking boundary counts the room as free.
	rooms, err = svc.FindAvailableRooms(day(15), day(20))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	rooms, err = svc.FindAvailableRooms(day(5), day(10))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = svc.FindAvailableRooms(day(14), day(14))
	requireServiceError(t, err, 400, "Invalid date range provided.")

	_, err = svc.Create(bookingInput(fx.room2, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)
	_, err = svc.FindAvailableRooms(day(12), day(14))
	requireServiceError(t, err, 404, "No available rooms found for the selected time range.")
}

func TestBookingListDenormalizesAndFilters(t *testing.T) {
	fx, svc := newBookingFixture(t)

	_, err := svc.Create(bookingInput(fx.room1, fx.person, day(10), day(15)), fx.user)
	require.NoError(t, err)
	_, err = svc.Create(bookingInput(fx.room2, fx.person, day(12), day(20)), fx.user)
	require.NoError(t, err)

	views, err := svc.List(BookingListFilter{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "101", views[0].RoomName)
	assert.Equal(t, "Building A", views[0].BuildingName)
	assert.Equal(t, "1st Floor", views[0].FloorName)
	assert.Equal(t, "Standard", views[0].RoomCategoryName)
	assert.Equal(t, "Rahim", views[0].PersonName)
	assert.Equal(t, "01711111111", views[0].PersonPhoneNo)

	// Date filter keeps only bookings fully inside the window.
	from, to := day(9), day(16)
	views, err = svc.List(BookingListFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fx.room1, views[0].RoomID)

	// Either bound alone still narrows the list.
	lower := day(11)
	views, err = svc.List(BookingListFilter{From: &lower})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fx.room2, views[0].RoomID)

	upper := day(16)
	views, err = svc.List(BookingListFilter{To: &upper})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fx.room1, views[0].RoomID)

	views, err = svc.List(BookingListFilter{Search: "102"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fx.room2, views[0].RoomID)

	views, err = svc.List(BookingListFilter{Search: "rahim"})
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = svc.List(BookingListFilter{Search: "no-such-thing"})
	require.NoError(t, err)
	assert.Empty(t, views)
}
