package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

func TestRegisterAndLogin(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	user, creds, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Len(t, creds.SessionToken, 64)
	assert.Len(t, creds.UpdateToken, 64)
	assert.NotEqual(t, creds.SessionToken, creds.UpdateToken)
	assert.True(t, creds.SessionExpiration.After(time.Now()))
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	_, loginCreds, err := auth.Login("rv@example.com", "hunter22")
	require.NoError(t, err)

	resolved, err := auth.GetUserBySessionToken(loginCreds.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, _, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.Register("rv@example.com", "different")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginFailures(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, _, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	_, creds, err := auth.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrNoSuchEmail)
	assert.Nil(t, creds)

	_, creds, err = auth.Login("rv@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Nil(t, creds)
}

func TestLoginKeepsActiveSession(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, registered, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	_, first, err := auth.Login("rv@example.com", "hunter22")
	require.NoError(t, err)
	_, second, err := auth.Login("rv@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, registered.SessionToken, first.SessionToken)
	assert.Equal(t, first.SessionToken, second.SessionToken)
	assert.Equal(t, first.UpdateToken, second.UpdateToken)
}

func TestExpiredSessionRejected(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, creds, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	_, err = auth.GetUserBySessionToken(creds.SessionToken)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("session_expiration", time.Now().Add(-time.Minute)).Error)

	_, err = auth.GetUserBySessionToken(creds.SessionToken)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUnknownSessionTokenRejected(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, err := auth.GetUserBySessionToken("deadbeef")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = auth.GetUserBySessionToken("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRenewRotatesTokens(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	user, old, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	renewed, fresh, err := auth.RenewSession(old.UpdateToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, renewed.ID)
	assert.NotEqual(t, old.SessionToken, fresh.SessionToken)
	assert.NotEqual(t, old.UpdateToken, fresh.UpdateToken)

	// The previous session token is dead the moment rotation lands.
	_, err = auth.GetUserBySessionToken(old.SessionToken)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = auth.GetUserBySessionToken(fresh.SessionToken)
	assert.NoError(t, err)
}

func TestConsumedUpdateTokenCannotRenewTwice(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, old, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	_, fresh, err := auth.RenewSession(old.UpdateToken)
	require.NoError(t, err)

	// A second renewal with the consumed token loses the optimistic
	// check and must not clobber the fresh pair.
	_, _, err = auth.RenewSession(old.UpdateToken)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = auth.GetUserBySessionToken(fresh.SessionToken)
	assert.NoError(t, err)
}

func TestRenewUnknownToken(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	_, _, err := auth.RenewSession("deadbeef")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = auth.RenewSession("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogoutRevokesBothTokens(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	user, creds, err := auth.Register("rv@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(user))

	_, err = auth.GetUserBySessionToken(creds.SessionToken)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = auth.RenewSession(creds.UpdateToken)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// The next login issues a fresh pair.
	_, fresh, err := auth.Login("rv@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, creds.SessionToken, fresh.SessionToken)

	_, err = auth.GetUserBySessionToken(fresh.SessionToken)
	assert.NoError(t, err)
}

func TestTwoUsersCanBothBeLoggedOut(t *testing.T) {
	auth := NewAuthService(newTestDB(t))

	alice, _, err := auth.Register("alice@example.com", "hunter22")
	require.NoError(t, err)
	bob, _, err := auth.Register("bob@example.com", "hunter22")
	require.NoError(t, err)

	// NULL tokens must not collide on the unique indexes.
	require.NoError(t, auth.Logout(alice))
	require.NoError(t, auth.Logout(bob))
}
