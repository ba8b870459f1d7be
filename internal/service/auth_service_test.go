package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin_PlainPassword(t *testing.T) {
	svc := NewAuthService(AuthConfig{Password: "buggy", Secret: "s3cret", TTL: time.Hour})

	token, exp, err := svc.Login("buggy")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, operatorSubject, claims.Subject)
}

func TestLogin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("buggy"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(AuthConfig{Password: "ignored", PasswordHash: string(hash), Secret: "s3cret", TTL: time.Hour})

	_, _, err = svc.Login("buggy")
	assert.NoError(t, err)

	_, _, err = svc.Login("ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Rejects(t *testing.T) {
	svc := NewAuthService(AuthConfig{Password: "buggy", Secret: "s3cret", TTL: time.Hour})
	_, _, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	unset := NewAuthService(AuthConfig{Secret: "s3cret", TTL: time.Hour})
	_, _, err = unset.Login("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewAuthService(AuthConfig{Password: "buggy", Secret: "s3cret", TTL: time.Minute}).(*authService)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.Login("buggy")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewAuthService(AuthConfig{Password: "buggy", Secret: "one", TTL: time.Hour})
	token, _, err := issuer.Login("buggy")
	require.NoError(t, err)

	_, err = NewAuthService(AuthConfig{Secret: "two"}).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
