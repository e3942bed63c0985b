package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undangan.link/defaults"
)

func TestLoginWithValidCredentials(t *testing.T) {
	a := NewAuthStore(newTestRepo(t))
	ctx := context.Background()

	ok := a.Login(ctx, defaults.AdminUsername, defaults.AdminPassword)
	require.True(t, ok)

	state := a.State()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "admin", state.Username)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	a := NewAuthStore(newTestRepo(t))
	ctx := context.Background()

	assert.False(t, a.Login(ctx, "admin", "wrong"))
	assert.False(t, a.State().IsAuthenticated)

	// Başarılı girişten sonraki başarısız deneme de durumu bozmamalı.
	require.True(t, a.Login(ctx, "admin", "wedding2023"))
	assert.False(t, a.Login(ctx, "baskasi", "wedding2023"))

	state := a.State()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "admin", state.Username)
}

func TestLogoutClearsBothFields(t *testing.T) {
	repo := newTestRepo(t)
	a := NewAuthStore(repo)
	ctx := context.Background()

	require.True(t, a.Login(ctx, "admin", "wedding2023"))
	a.Logout(ctx)

	state := a.State()
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Username)

	// Oturum durumu da diğer dilimler gibi kalıcıdır.
	reloaded := NewAuthStore(repo)
	assert.False(t, reloaded.State().IsAuthenticated)
}
