package services

import (
	"errors"
	"math"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	RoomName        string `json:"roomName"`
	RoomDescription string `json:"roomDescription"`
	Remarks         string `json:"remarks"`
	RoomCategoryID  uint   `json:"roomCategoryId"`
	FloorID         uint   `json:"floorId"`
	BuildingID      uint   `json:"buildingId"`
}

type RoomListFilter struct {
	Name         string
	BuildingID   uint
	BuildingName string
	FloorName    string
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

type RoomPage struct {
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
	Rooms      []models.RoomListRow
}

// Sortable fields are an explicit allow-list; an unknown sortBy is ignored
// rather than interpolated into the query.
var roomSortColumns = map[string]string{
	"roomId":           "rooms.id",
	"roomName":         "rooms.name",
	"buildingName":     "buildings.name",
	"floorName":        "floors.name",
	"roomCategoryName": "room_categories.name",
	"createdTime":      "rooms.created_time",
}

func (s *RoomService) checkRefs(in RoomInput) error {
	var count int64
	if err := s.DB.Model(&models.Building{}).
		Where("id = ? AND is_active = ?", in.BuildingID, true).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Building not found or inactive")
	}

	if err := s.DB.Model(&models.Floor{}).
		Where("id = ? AND is_active = ?", in.FloorID, true).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Floor not found or inactive")
	}

	if err := s.DB.Model(&models.RoomCategory{}).
		Where("id = ? AND is_active = ?", in.RoomCategoryID, true).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Room category not found or inactive")
	}
	return nil
}

func (s *RoomService) Create(in RoomInput, createdBy uint) (*models.Room, error) {
	in.RoomName = strings.TrimSpace(in.RoomName)
	if in.RoomName == "" {
		return nil, Invalid("Room name is required.")
	}
	if err := s.checkRefs(in); err != nil {
		return nil, err
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).
		Where("name = ? AND building_id = ? AND floor_id = ? AND is_active = ?",
			in.RoomName, in.BuildingID, in.FloorID, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Room already exists on this floor.")
	}

	room := models.Room{
		Name:            in.RoomName,
		Description:     in.RoomDescription,
		Remarks:         in.Remarks,
		RoomCategoryID:  in.RoomCategoryID,
		FloorID:         in.FloorID,
		BuildingID:      in.BuildingID,
		HaveRoomDetails: false,
		IsRoomAvailable: true,
		Audit:           newAudit(createdBy),
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List joins building/floor/category names onto each room and applies
// substring filters, allow-listed sorting and pagination.
func (s *RoomService) List(filter RoomListFilter) (*RoomPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	query := s.DB.Model(&models.Room{}).
		Select(`rooms.id AS room_id, rooms.name AS room_name,
			rooms.description AS room_description, rooms.remarks,
			rooms.room_category_id, room_categories.name AS room_category_name,
			rooms.floor_id, floors.name AS floor_name,
			rooms.building_id, buildings.name AS building_name,
			rooms.have_room_details, rooms.is_room_available,
			rooms.created_by, rooms.created_time, rooms.is_active`).
		Joins("JOIN buildings ON buildings.id = rooms.building_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN room_categories ON room_categories.id = rooms.room_category_id").
		Where("rooms.is_active = ?", true)

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(rooms.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if filter.BuildingID != 0 {
		query = query.Where("rooms.building_id = ?", filter.BuildingID)
	}
	if bn := strings.TrimSpace(filter.BuildingName); bn != "" {
		query = query.Where("LOWER(buildings.name) LIKE ?", "%"+strings.ToLower(bn)+"%")
	}
	if fn := strings.TrimSpace(filter.FloorName); fn != "" {
		query = query.Where("LOWER(floors.name) LIKE ?", "%"+strings.ToLower(fn)+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	if column, ok := roomSortColumns[filter.SortBy]; ok {
		direction := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			direction = "DESC"
		}
		query = query.Order(column + " " + direction)
	}

	var rows []models.RoomListRow
	if err := query.
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.RoomListRow{}
	}

	return &RoomPage{
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(filter.PageSize))),
		Rooms:      rows,
	}, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Room not found")
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, in RoomInput, updatedBy uint) (*models.Room, error) {
	in.RoomName = strings.TrimSpace(in.RoomName)
	if in.RoomName == "" {
		return nil, Invalid("Room name is required.")
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Room not found or inactive")
	}
	if err := s.checkRefs(in); err != nil {
		return nil, err
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}

	fields := updateStamps(map[string]interface{}{
		"name":             in.RoomName,
		"description":      in.RoomDescription,
		"remarks":          in.Remarks,
		"room_category_id": in.RoomCategoryID,
		"floor_id":         in.FloorID,
		"building_id":      in.BuildingID,
	}, updatedBy)
	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RoomService) SoftDelete(id, inactiveBy uint) (*models.Room, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Room not found or already inactive")
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	room.IsActive = false
	room.InactiveBy = &inactiveBy
	return room, nil
}
