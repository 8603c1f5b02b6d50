package services

import (
	"testing"

	"dormitory-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("Admin", "Admin@Dorm.Local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@dorm.local", user.Email)
	assert.NotEqual(t, "s3cret", user.Password)

	_, err = svc.Register("Other", "admin@dorm.local", "another")
	requireServiceError(t, err, 409, "Email already exists.")

	_, err = svc.Register("", "x@dorm.local", "pw")
	requireServiceError(t, err, 400, "Name, email and password are required.")

	result, err := svc.Login("admin@dorm.local", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := utils.ValidateAccessToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin@dorm.local", claims.Email)

	_, err = svc.Login("admin@dorm.local", "wrong")
	requireServiceError(t, err, 401, "Invalid email or password.")

	_, err = svc.Login("nobody@dorm.local", "s3cret")
	requireServiceError(t, err, 401, "Invalid email or password.")

	_, err = svc.Login("", "")
	requireServiceError(t, err, 400, "Email and password are required.")
}
