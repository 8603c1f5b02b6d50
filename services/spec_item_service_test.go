package services

import (
	"testing"

	"dormitory-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecItemCatalogLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	features := NewSpecItemService(db, models.TableCommonFeatures, "Common feature")
	beds := NewSpecItemService(db, models.TableBeds, "Bed")

	item, err := features.Create("Air Conditioner", "split unit", user.ID)
	require.NoError(t, err)
	assert.True(t, item.IsActive)

	_, err = features.Create("Air Conditioner", "another", user.ID)
	requireServiceError(t, err, 409, "Common feature already exists.")

	// Catalogs live in separate tables, so the same name is fine elsewhere.
	_, err = beds.Create("Air Conditioner", "odd but allowed", user.ID)
	require.NoError(t, err)

	_, err = features.Create("", "remarks", user.ID)
	requireServiceError(t, err, 400, "Invalid Common feature informations.")

	_, err = features.Create("TV", "flat screen", 9999)
	requireServiceError(t, err, 404, "User not found")

	updated, err := features.Update(item.ID, "Central AC", "ducted", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Central AC", updated.Name)
	assert.Equal(t, "ducted", updated.Remarks)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, user.ID, *updated.UpdatedBy)

	deleted, err := features.SoftDelete(item.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	_, err = features.GetByID(item.ID)
	requireServiceError(t, err, 404, "Common feature not found")

	list, err := features.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = features.SoftDelete(item.ID, user.ID)
	requireServiceError(t, err, 404, "Common feature not found or already inactive")

	// The name is reusable once its holder is inactive.
	_, err = features.Create("Central AC", "again", user.ID)
	require.NoError(t, err)
}

func TestSpecItemNameMap(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	furnitures := NewSpecItemService(db, models.TableFurnitures, "Furniture")

	chair, err := furnitures.Create("Chair", "wooden", user.ID)
	require.NoError(t, err)
	table, err := furnitures.Create("Table", "steel", user.ID)
	require.NoError(t, err)

	names, err := furnitures.NameMap([]uint{chair.ID, table.ID, 9999})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{chair.ID: "Chair", table.ID: "Table"}, names)

	names, err = furnitures.NameMap(nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}
