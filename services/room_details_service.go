package services

import (
	"errors"
	"strings"
	"time"

	"dormitory-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomDetailsService struct {
	DB     *gorm.DB
	Images *ImageService

	features   *SpecItemService
	furnitures *SpecItemService
	bathrooms  *SpecItemService
}

func NewRoomDetailsService(db *gorm.DB, images *ImageService,
	features, furnitures, bathrooms *SpecItemService) *RoomDetailsService {
	return &RoomDetailsService{
		DB:         db,
		Images:     images,
		features:   features,
		furnitures: furnitures,
		bathrooms:  bathrooms,
	}
}

type RoomDetailsInput struct {
	RoomID     uint `json:"roomId"`
	FloorID    uint `json:"floorId"`
	BuildingID uint `json:"buildingId"`

	RoomDimension      string `json:"roomDimension"`
	RoomSideID         int    `json:"roomSideId"`
	RoomBelconiID      int    `json:"roomBelconiId"`
	AttachedBathroomID int    `json:"attachedBathroomId"`
	BedSpecificationID *int   `json:"bedSpecificationId"`

	CommonFeatures        []uint `json:"commonFeatures"`
	AvailableFurnitures   []uint `json:"availableFurnitures"`
	BathroomSpecification []uint `json:"bathroomSpecification"`

	// Each entry is either a data-URI payload or an already-stored file name.
	RoomImages []string `json:"roomImages"`
}

// IDName is the {id, name} pair the denormalized responses carry for every
// referenced spec item.
type IDName struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RoomDetailsView struct {
	RoomDetailsID uint   `json:"roomDetailsId"`
	RoomID        uint   `json:"roomId"`
	RoomName      string `json:"roomName"`
	FloorID       uint   `json:"floorId"`
	FloorName     string `json:"floorName"`
	BuildingID    uint   `json:"buildingId"`
	BuildingName  string `json:"buildingName"`

	RoomDimension      string `json:"roomDimension"`
	RoomSideID         int    `json:"roomSideId"`
	RoomBelconiID      int    `json:"roomBelconiId"`
	AttachedBathroomID int    `json:"attachedBathroomId"`
	BedSpecificationID *int   `json:"bedSpecificationId"`

	CommonFeatures        []IDName `json:"commonFeatures"`
	AvailableFurnitures   []IDName `json:"availableFurnitures"`
	BathroomSpecification []IDName `json:"bathroomSpecification"`
	RoomImages            []string `json:"roomImages"`

	IsApprove    bool       `json:"isApprove"`
	ApprovedBy   *uint      `json:"approvedBy,omitempty"`
	IsActive     bool       `json:"isActive"`
	InactiveBy   *uint      `json:"inactiveBy,omitempty"`
	InactiveTime *time.Time `json:"inactiveTime,omitempty"`
	CreatedBy    uint       `json:"createdBy"`
	CreatedTime  time.Time  `json:"createdTime"`
	UpdatedBy    *uint      `json:"updatedBy,omitempty"`
	UpdatedTime  *time.Time `json:"updatedTime,omitempty"`
}

func (in *RoomDetailsInput) valid() bool {
	return strings.TrimSpace(in.RoomDimension) != "" &&
		in.RoomID > 0 && in.FloorID > 0 && in.BuildingID > 0
}

// resolveNames fetches the display names of the referenced building, floor
// and room; any miss means a dangling reference.
func (s *RoomDetailsService) resolveNames(buildingID, floorID, roomID uint) (string, string, string, error) {
	buildings, err := tableNameMap(s.DB, "buildings", []uint{buildingID})
	if err != nil {
		return "", "", "", err
	}
	floors, err := tableNameMap(s.DB, "floors", []uint{floorID})
	if err != nil {
		return "", "", "", err
	}
	rooms, err := tableNameMap(s.DB, "rooms", []uint{roomID})
	if err != nil {
		return "", "", "", err
	}

	buildingName, okB := buildings[buildingID]
	floorName, okF := floors[floorID]
	roomName, okR := rooms[roomID]
	if !okB || !okF || !okR {
		return "", "", "", NotFound("Invalid building, floor, or room ID.")
	}
	return buildingName, floorName, roomName, nil
}

func (s *RoomDetailsService) Create(in RoomDetailsInput, createdBy uint) (*models.RoomDetails, error) {
	if !in.valid() {
		return nil, Invalid("Invalid room details.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.RoomDetails{}).
		Where("room_id = ? AND floor_id = ? AND building_id = ? AND is_active = ?",
			in.RoomID, in.FloorID, in.BuildingID, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Room details already exist.")
	}

	if _, _, _, err := s.resolveNames(in.BuildingID, in.FloorID, in.RoomID); err != nil {
		return nil, err
	}

	imageNames := make([]string, 0, len(in.RoomImages))
	for _, image := range in.RoomImages {
		name, err := s.Images.SaveBase64Image(image, createdBy)
		if err != nil {
			return nil, err
		}
		imageNames = append(imageNames, name)
	}

	details := models.RoomDetails{
		RoomID:                in.RoomID,
		FloorID:               in.FloorID,
		BuildingID:            in.BuildingID,
		RoomDimension:         in.RoomDimension,
		RoomSideID:            in.RoomSideID,
		RoomBelconiID:         in.RoomBelconiID,
		AttachedBathroomID:    in.AttachedBathroomID,
		BedSpecificationID:    in.BedSpecificationID,
		CommonFeatures:        datatypes.NewJSONSlice(in.CommonFeatures),
		AvailableFurnitures:   datatypes.NewJSONSlice(in.AvailableFurnitures),
		BathroomSpecification: datatypes.NewJSONSlice(in.BathroomSpecification),
		RoomImages:            datatypes.NewJSONSlice(imageNames),
		Audit:                 newAudit(createdBy),
	}

	// Details insert and the haveRoomDetails flip must land together.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Room{}).
			Where("id = ? AND floor_id = ? AND building_id = ? AND is_active = ?",
				in.RoomID, in.FloorID, in.BuildingID, true).
			Update("have_room_details", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return NotFound("Room not found for updating haveRoomDetails properties.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *RoomDetailsService) Update(id uint, in RoomDetailsInput, updatedBy uint) (*models.RoomDetails, error) {
	if strings.TrimSpace(in.RoomDimension) == "" {
		return nil, Invalid("Invalid request data.")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}

	var details models.RoomDetails
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Room details not found.")
	}
	if err != nil {
		return nil, err
	}

	if _, _, _, err := s.resolveNames(details.BuildingID, details.FloorID, details.RoomID); err != nil {
		return nil, NotFound("Invalid building, floor, or room data.")
	}

	// New inline images get written out; stored references pass through.
	imageNames := make([]string, 0, len(in.RoomImages))
	for _, image := range in.RoomImages {
		if IsInlineImage(image) {
			name, err := s.Images.SaveBase64Image(image, updatedBy)
			if err != nil {
				return nil, err
			}
			imageNames = append(imageNames, name)
		} else {
			imageNames = append(imageNames, image)
		}
	}

	fields := updateStamps(map[string]interface{}{
		"room_dimension":         in.RoomDimension,
		"room_side_id":           in.RoomSideID,
		"room_belconi_id":        in.RoomBelconiID,
		"attached_bathroom_id":   in.AttachedBathroomID,
		"bed_specification_id":   in.BedSpecificationID,
		"common_features":        datatypes.NewJSONSlice(in.CommonFeatures),
		"available_furnitures":   datatypes.NewJSONSlice(in.AvailableFurnitures),
		"bathroom_specification": datatypes.NewJSONSlice(in.BathroomSpecification),
		"room_images":            datatypes.NewJSONSlice(imageNames),
	}, updatedBy)
	if err := s.DB.Model(&models.RoomDetails{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}

	if err := s.DB.First(&details, id).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *RoomDetailsService) SoftDelete(id, inactiveBy uint) (*models.RoomDetails, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	var details models.RoomDetails
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Room Details not found or already inactive")
	}
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RoomDetails{}).Where("id = ?", id).
			Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Room{}).
			Where("id = ? AND floor_id = ? AND building_id = ? AND is_active = ?",
				details.RoomID, details.FloorID, details.BuildingID, true).
			Update("have_room_details", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return NotFound("Room not found for updating haveRoomDetails properties.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details.IsActive = false
	details.InactiveBy = &inactiveBy
	return &details, nil
}

// GetAll denormalizes every active details record. Unresolved ids keep their
// slot with an "Unknown" label instead of failing the whole read.
func (s *RoomDetailsService) GetAll() ([]RoomDetailsView, error) {
	var list []models.RoomDetails
	if err := s.DB.Where("is_active = ?", true).Find(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, NotFound("No room details found.")
	}
	return s.denormalize(list)
}

// GetByCriteria returns the details of one room addressed by its
// building/floor/room triple.
func (s *RoomDetailsService) GetByCriteria(userID, buildingID, floorID, roomID uint) ([]RoomDetailsView, error) {
	if err := requireUser(s.DB, userID); err != nil {
		return nil, err
	}

	var list []models.RoomDetails
	if err := s.DB.
		Where("is_active = ? AND building_id = ? AND floor_id = ? AND room_id = ?",
			true, buildingID, floorID, roomID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, NotFound("No room details found for the specified criteria.")
	}
	return s.denormalize(list)
}

func (s *RoomDetailsService) denormalize(list []models.RoomDetails) ([]RoomDetailsView, error) {
	roomIDs := make([]uint, 0, len(list))
	floorIDs := make([]uint, 0, len(list))
	buildingIDs := make([]uint, 0, len(list))
	var featureIDs, furnitureIDs, bathroomIDs []uint
	for _, d := range list {
		roomIDs = append(roomIDs, d.RoomID)
		floorIDs = append(floorIDs, d.FloorID)
		buildingIDs = append(buildingIDs, d.BuildingID)
		featureIDs = append(featureIDs, d.CommonFeatures...)
		furnitureIDs = append(furnitureIDs, d.AvailableFurnitures...)
		bathroomIDs = append(bathroomIDs, d.BathroomSpecification...)
	}

	rooms, err := tableNameMap(s.DB, "rooms", roomIDs)
	if err != nil {
		return nil, err
	}
	floors, err := tableNameMap(s.DB, "floors", floorIDs)
	if err != nil {
		return nil, err
	}
	buildings, err := tableNameMap(s.DB, "buildings", buildingIDs)
	if err != nil {
		return nil, err
	}
	features, err := s.features.NameMap(featureIDs)
	if err != nil {
		return nil, err
	}
	furnitures, err := s.furnitures.NameMap(furnitureIDs)
	if err != nil {
		return nil, err
	}
	bathrooms, err := s.bathrooms.NameMap(bathroomIDs)
	if err != nil {
		return nil, err
	}

	views := make([]RoomDetailsView, 0, len(list))
	for _, d := range list {
		view := RoomDetailsView{
			RoomDetailsID:         d.ID,
			RoomID:                d.RoomID,
			RoomName:              nameOrUnknown(rooms, d.RoomID),
			FloorID:               d.FloorID,
			FloorName:             nameOrUnknown(floors, d.FloorID),
			BuildingID:            d.BuildingID,
			BuildingName:          nameOrUnknown(buildings, d.BuildingID),
			RoomDimension:         d.RoomDimension,
			RoomSideID:            d.RoomSideID,
			RoomBelconiID:         d.RoomBelconiID,
			AttachedBathroomID:    d.AttachedBathroomID,
			BedSpecificationID:    d.BedSpecificationID,
			CommonFeatures:        idNamePairs(d.CommonFeatures, features),
			AvailableFurnitures:   idNamePairs(d.AvailableFurnitures, furnitures),
			BathroomSpecification: idNamePairs(d.BathroomSpecification, bathrooms),
			RoomImages:            imageURLs(d.RoomImages),
			IsApprove:             d.IsApprove,
			ApprovedBy:            d.ApprovedBy,
			IsActive:              d.IsActive,
			InactiveBy:            d.InactiveBy,
			InactiveTime:          d.InactiveTime,
			CreatedBy:             d.CreatedBy,
			CreatedTime:           d.CreatedTime,
			UpdatedBy:             d.UpdatedBy,
			UpdatedTime:           d.UpdatedTime,
		}
		views = append(views, view)
	}
	return views, nil
}

func nameOrUnknown(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

func idNamePairs(ids []uint, names map[uint]string) []IDName {
	pairs := make([]IDName, 0, len(ids))
	for _, id := range ids {
		pairs = append(pairs, IDName{ID: id, Name: nameOrUnknown(names, id)})
	}
	return pairs
}

func imageURLs(stored []string) []string {
	urls := make([]string, 0, len(stored))
	for _, name := range stored {
		if name == "" {
			continue
		}
		urls = append(urls, "images/"+name)
	}
	return urls
}
