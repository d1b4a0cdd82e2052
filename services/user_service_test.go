package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/dto"
)

func registerRequest(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		FirstName: "First",
		LastName:  "Last",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(registerRequest("user1"))
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")

	// login works with username and with email
	got, token, err := svc.Authenticate("user1", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Authenticate("user1@example.com", "password123")
	assert.NoError(t, err)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(registerRequest("user1"))
	require.NoError(t, err)

	_, _, err = svc.Authenticate("user1", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(registerRequest("user1"))
	require.NoError(t, err)

	_, err = svc.Register(registerRequest("user1"))
	assert.ErrorIs(t, err, ErrDuplicateUser)
}
