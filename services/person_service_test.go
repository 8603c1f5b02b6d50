package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personInput(name, phone, email string) PersonInput {
	return PersonInput{
		Name:             name,
		CompanyName:      "Test Co",
		PersonalPhoneNo:  phone,
		CompanyPhoneNo:   "0000",
		Email:            email,
		NidBirthPassport: "NID-1",
		CountryName:      "Bangladesh",
	}
}

func TestPersonContactUniqueness(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewPersonService(db)

	first, err := svc.Create(personInput("Rahim", "01711111111", "rahim@test.local"), user.ID)
	require.NoError(t, err)

	_, err = svc.Create(personInput("Karim", "01711111111", "karim@test.local"), user.ID)
	requireServiceError(t, err, 409, "Personal contact no or email already exists.")

	_, err = svc.Create(personInput("Karim", "01722222222", "rahim@test.local"), user.ID)
	requireServiceError(t, err, 409, "Personal contact no or email already exists.")

	// Uniqueness only spans active rows: delete, then the contact is free.
	_, err = svc.SoftDelete(first.ID, user.ID)
	require.NoError(t, err)
	_, err = svc.Create(personInput("Karim", "01711111111", "rahim@test.local"), user.ID)
	require.NoError(t, err)
}

func TestPersonValidationAndSearch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewPersonService(db)

	in := personInput("Rahim", "01711111111", "rahim@test.local")
	in.CountryName = " "
	_, err := svc.Create(in, user.ID)
	requireServiceError(t, err, 400, "Invalid informations to add new person.")

	_, err = svc.Create(personInput("Rahim", "01711111111", "rahim@test.local"), user.ID)
	require.NoError(t, err)
	_, err = svc.Create(personInput("Karim", "01722222222", "karim@test.local"), user.ID)
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.List("Rahim")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Rahim", byName[0].Name)

	byPhone, err := svc.List("0172")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Karim", byPhone[0].Name)

	none, err := svc.List("nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPersonUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := NewPersonService(db)

	person, err := svc.Create(personInput("Rahim", "01711111111", "rahim@test.local"), user.ID)
	require.NoError(t, err)

	in := personInput("Rahim Uddin", "01711111111", "rahim@test.local")
	in.Address = "Dhaka"
	updated, err := svc.Update(person.ID, in, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", updated.Name)
	assert.Equal(t, "Dhaka", updated.Address)

	_, err = svc.Update(9999, in, user.ID)
	requireServiceError(t, err, 404, "Person not found or inactive")

	deleted, err := svc.SoftDelete(person.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	_, err = svc.GetByID(person.ID)
	requireServiceError(t, err, 404, "Person not found")
}
