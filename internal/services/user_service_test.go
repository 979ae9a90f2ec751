package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
)

func TestUserService_Register(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("ana", "pw123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana", user.Username)
	assert.Empty(t, user.PasswordHash)

	// The hash, not the plaintext, is what got stored.
	var stored string
	require.NoError(t, db.QueryRow("SELECT password_hash FROM users WHERE id = 1").Scan(&stored))
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "pw123", stored)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("ana", "pw123")
	require.NoError(t, err)

	_, err = svc.Register("ana", "otherpw")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.ConflictError, appErr.Type)

	// The first record is untouched and no second row exists.
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUserService_Authenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("ana", "pw123")
	require.NoError(t, err)

	user, err := svc.Authenticate("ana", "pw123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_AuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("ana", "pw123")
	require.NoError(t, err)

	_, wrongPw := svc.Authenticate("ana", "nope")
	_, unknownUser := svc.Authenticate("bob", "pw123")

	var appErr1, appErr2 *apperror.AppError
	require.True(t, errors.As(wrongPw, &appErr1))
	require.True(t, errors.As(unknownUser, &appErr2))

	// Same type, same message: no username oracle.
	assert.Equal(t, apperror.AuthError, appErr1.Type)
	assert.Equal(t, apperror.AuthError, appErr2.Type)
	assert.Equal(t, appErr1.Message, appErr2.Message)
}
