package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewBuildingService(db)

	building, err := svc.Create("Building A", "main block", user.ID)
	require.NoError(t, err)
	assert.True(t, building.IsActive)
	assert.Equal(t, user.ID, building.CreatedBy)

	_, err = svc.Create("Building A", "duplicate", user.ID)
	requireServiceError(t, err, 409, "Building already exists.")

	_, err = svc.Create("  ", "blank", user.ID)
	requireServiceError(t, err, 400, "Invalid building informations.")

	_, err = svc.Create("Building B", "", 9999)
	requireServiceError(t, err, 404, "User not found")

	updated, err := svc.Update(building.ID, "Building A1", "renamed", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Building A1", updated.Name)
	assert.Equal(t, "renamed", updated.Remarks)

	deleted, err := svc.SoftDelete(building.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetByID(building.ID)
	requireServiceError(t, err, 404, "Building not found")
}

func TestFloorRequiresActiveBuilding(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	buildings := NewBuildingService(db)
	floors := NewFloorService(db)

	building, err := buildings.Create("Building A", "", user.ID)
	require.NoError(t, err)

	floor, err := floors.Create("1st Floor", building.ID, "", user.ID)
	require.NoError(t, err)
	assert.Equal(t, building.ID, floor.BuildingID)

	_, err = floors.Create("1st Floor", building.ID, "", user.ID)
	requireServiceError(t, err, 409, "Floor already exists.")

	_, err = floors.Create("2nd Floor", 9999, "", user.ID)
	requireServiceError(t, err, 404, "Building not found or inactive")

	// Deactivating the building blocks new floors under it.
	_, err = buildings.SoftDelete(building.ID, user.ID)
	require.NoError(t, err)
	_, err = floors.Create("2nd Floor", building.ID, "", user.ID)
	requireServiceError(t, err, 404, "Building not found or inactive")

	// Existing floors are untouched by the building's removal.
	got, err := floors.GetByID(floor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}
