package services

import (
	"errors"
	"strings"
	"time"

	"dormitory-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the reservation lifecycle and the availability search.
// All interval logic uses half-open semantics: a booking occupies
// [StartTime, EndTime), so two bookings conflict iff a.start < b.end and
// b.start < a.end.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type BookingInput struct {
	RoomID   uint `json:"roomId"`
	PersonID uint `json:"personId"`

	PaidItems datatypes.JSON `json:"paidItems"`
	FreeItems datatypes.JSON `json:"freeItems"`

	// Totals are stored as supplied; the server does not recompute them.
	TotalPaidItemsPrice float64 `json:"totalPaidItemsPrice"`
	TotalFreeItemsPrice float64 `json:"totalFreeItemsPrice"`
	TotalRoomPrice      float64 `json:"totalRoomPrice"`
	GrandTotal          float64 `json:"grandTotal"`
	TotalDays           int     `json:"totalDays"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Remarks   string    `json:"remarks"`
}

type BookingListFilter struct {
	From   *time.Time
	To     *time.Time
	Search string
}

// BookingView is a booking row with the referenced room/person attributes
// denormalized for display.
type BookingView struct {
	models.RoomBooking

	RoomName         string `json:"roomName"`
	BuildingName     string `json:"buildingName"`
	FloorName        string `json:"floorName"`
	RoomCategoryName string `json:"roomCategoryName"`
	PersonName       string `json:"personName"`
	PersonPhoneNo    string `json:"personPhoneNo"`
}

func (in *BookingInput) intervalError(message string) error {
	if in.StartTime.IsZero() || in.EndTime.IsZero() || !in.StartTime.Before(in.EndTime) {
		return Invalid(message)
	}
	return nil
}

func (s *BookingService) roomBookable(roomID uint) error {
	var count int64
	if err := s.DB.Model(&models.Room{}).
		Where("id = ? AND is_active = ?", roomID, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Room not found or deleted.")
	}
	return nil
}

func (s *BookingService) personActive(personID uint) error {
	var count int64
	if err := s.DB.Model(&models.Person{}).
		Where("id = ? AND is_active = ?", personID, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Person not found or deleted.")
	}
	return nil
}

// overlapCount counts active bookings of the room that intersect
// [start, end), optionally ignoring one booking id (for updates). MySQL rows
// get locked so a concurrent create inside another transaction must wait.
func (s *BookingService) overlapCount(tx *gorm.DB, roomID uint, start, end time.Time, excludeID uint) (int64, error) {
	query := tx.Model(&models.RoomBooking{}).
		Where("room_id = ? AND is_active = ? AND start_time < ? AND end_time > ?",
			roomID, true, end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (s *BookingService) Create(in BookingInput, createdBy uint) (*models.RoomBooking, error) {
	if err := in.intervalError("Invalid room booking requirement's info."); err != nil {
		return nil, err
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}
	if err := s.roomBookable(in.RoomID); err != nil {
		return nil, err
	}
	if err := s.personActive(in.PersonID); err != nil {
		return nil, err
	}

	booking := models.RoomBooking{
		RoomID:              in.RoomID,
		PersonID:            in.PersonID,
		PaidItems:           emptyListIfNil(in.PaidItems),
		FreeItems:           emptyListIfNil(in.FreeItems),
		TotalPaidItemsPrice: in.TotalPaidItemsPrice,
		TotalFreeItemsPrice: in.TotalFreeItemsPrice,
		TotalRoomPrice:      in.TotalRoomPrice,
		GrandTotal:          in.GrandTotal,
		TotalDays:           in.TotalDays,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		Remarks:             in.Remarks,
		Audit:               newAudit(createdBy),
	}

	// Overlap check and insert run in one transaction so two concurrent
	// requests cannot both book the same room for an intersecting interval.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		conflicts, err := s.overlapCount(tx, in.RoomID, in.StartTime, in.EndTime, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return Conflict("Room is already booked for the selected time range.")
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns active bookings with denormalized display fields. All
// referenced catalogs are pre-fetched into maps keyed by id, then filters
// run over the assembled rows.
func (s *BookingService) List(filter BookingListFilter) ([]BookingView, error) {
	query := s.DB.Where("is_active = ?", true)
	if filter.From != nil {
		query = query.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("end_time <= ?", *filter.To)
	}

	var bookings []models.RoomBooking
	if err := query.Order("start_time").Find(&bookings).Error; err != nil {
		return nil, err
	}

	roomIDs := make([]uint, 0, len(bookings))
	personIDs := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		roomIDs = append(roomIDs, b.RoomID)
		personIDs = append(personIDs, b.PersonID)
	}

	rooms := map[uint]models.Room{}
	if len(roomIDs) > 0 {
		var list []models.Room
		if err := s.DB.Where("id IN ?", roomIDs).Find(&list).Error; err != nil {
			return nil, err
		}
		for _, r := range list {
			rooms[r.ID] = r
		}
	}

	persons := map[uint]models.Person{}
	if len(personIDs) > 0 {
		var list []models.Person
		if err := s.DB.Where("id IN ?", personIDs).Find(&list).Error; err != nil {
			return nil, err
		}
		for _, p := range list {
			persons[p.ID] = p
		}
	}

	buildingIDs := make([]uint, 0, len(rooms))
	floorIDs := make([]uint, 0, len(rooms))
	categoryIDs := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		buildingIDs = append(buildingIDs, r.BuildingID)
		floorIDs = append(floorIDs, r.FloorID)
		categoryIDs = append(categoryIDs, r.RoomCategoryID)
	}

	buildings, err := tableNameMap(s.DB, "buildings", buildingIDs)
	if err != nil {
		return nil, err
	}
	floors, err := tableNameMap(s.DB, "floors", floorIDs)
	if err != nil {
		return nil, err
	}
	categories, err := tableNameMap(s.DB, "room_categories", categoryIDs)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{RoomBooking: b}
		if room, ok := rooms[b.RoomID]; ok {
			view.RoomName = room.Name
			view.BuildingName = nameOrUnknown(buildings, room.BuildingID)
			view.FloorName = nameOrUnknown(floors, room.FloorID)
			view.RoomCategoryName = nameOrUnknown(categories, room.RoomCategoryID)
		}
		if person, ok := persons[b.PersonID]; ok {
			view.PersonName = person.Name
			view.PersonPhoneNo = person.PersonalPhoneNo
		}

		if search != "" && !bookingMatches(view, search) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func bookingMatches(view BookingView, search string) bool {
	for _, field := range []string{
		view.RoomName, view.BuildingName, view.FloorName,
		view.RoomCategoryName, view.PersonName, view.PersonPhoneNo,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *BookingService) Update(id uint, in BookingInput, updatedBy uint) (*models.RoomBooking, error) {
	if err := in.intervalError("Invalid room booking update info."); err != nil {
		return nil, err
	}

	var booking models.RoomBooking
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Room booking not found or inactive.")
	}
	if err != nil {
		return nil, err
	}

	if err := s.roomBookable(in.RoomID); err != nil {
		return nil, err
	}
	if err := s.personActive(in.PersonID); err != nil {
		return nil, err
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		conflicts, err := s.overlapCount(tx, in.RoomID, in.StartTime, in.EndTime, id)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return Conflict("Room is already booked for the selected time range.")
		}

		fields := updateStamps(map[string]interface{}{
			"room_id":                in.RoomID,
			"person_id":              in.PersonID,
			"paid_items":             emptyListIfNil(in.PaidItems),
			"free_items":             emptyListIfNil(in.FreeItems),
			"total_paid_items_price": in.TotalPaidItemsPrice,
			"total_free_items_price": in.TotalFreeItemsPrice,
			"total_room_price":       in.TotalRoomPrice,
			"grand_total":            in.GrandTotal,
			"total_days":             in.TotalDays,
			"start_time":             in.StartTime,
			"end_time":               in.EndTime,
			"remarks":                in.Remarks,
		}, updatedBy)
		return tx.Model(&models.RoomBooking{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) SoftDelete(id, inactiveBy uint) (*models.RoomBooking, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	var booking models.RoomBooking
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Booked room not found or already inactive")
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.RoomBooking{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	booking.IsActive = false
	booking.InactiveBy = &inactiveBy
	return &booking, nil
}

// FindAvailableRooms answers "which rooms are free over [start, end)": every
// active, bookable room without an active booking overlapping the range,
// decorated with the names and pricing the booking screen shows.
func (s *BookingService) FindAvailableRooms(start, end time.Time) ([]models.AvailableRoom, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, Invalid("Invalid date range provided.")
	}

	booked := s.DB.Model(&models.RoomBooking{}).
		Select("room_id").
		Where("is_active = ? AND start_time < ? AND end_time > ?", true, end, start)

	var rooms []models.AvailableRoom
	err := s.DB.Model(&models.Room{}).
		Select(`rooms.id AS room_id, rooms.name AS room_name,
			rooms.description AS room_description, rooms.remarks,
			rooms.room_category_id, rooms.floor_id, rooms.building_id,
			rooms.is_room_available, rooms.have_room_details,
			floors.name AS floor_name, buildings.name AS building_name,
			room_categories.name AS room_category_name,
			room_categories.no_of_person AS room_wise_person,
			room_categories.category_based_price AS room_price`).
		Joins("JOIN buildings ON buildings.id = rooms.building_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN room_categories ON room_categories.id = rooms.room_category_id").
		Where("rooms.is_active = ? AND rooms.is_room_available = ?", true, true).
		Where("rooms.id NOT IN (?)", booked).
		Scan(&rooms).Error
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, NotFound("No available rooms found for the selected time range.")
	}
	return rooms, nil
}

func emptyListIfNil(items datatypes.JSON) datatypes.JSON {
	if len(items) == 0 {
		return datatypes.JSON("[]")
	}
	return items
}
