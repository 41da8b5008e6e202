package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func TestUsers_CreateDefaults(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	u, err := b.Users().Create(ctx, types.User{ChatID: 100, Username: "ana"})
	require.NoError(t, err)
	assert.NotZero(t, u.UserID)
	assert.Len(t, u.ReferralCode, 8)
	assert.Equal(t, types.DefaultTimezone, u.Timezone)

	got, err := b.Users().GetByChatID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, types.Portuguese, got.Language)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
}

func TestUsers_DuplicateChatID(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	_, err := b.Users().Create(ctx, types.User{ChatID: 7})
	require.NoError(t, err)
	_, err = b.Users().Create(ctx, types.User{ChatID: 7})
	assert.Error(t, err)
}

func TestUsers_CreateRequiresChatID(t *testing.T) {
	b := setupBackend(t)
	_, err := b.Users().Create(context.Background(), types.User{})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestUsers_Referrals(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	referrer := createUser(t, b, 1)
	found, err := b.Users().GetByReferralCode(ctx, " "+referrer.ReferralCode+" ")
	require.NoError(t, err)
	assert.Equal(t, referrer.UserID, found.UserID)

	for chat := int64(2); chat <= 3; chat++ {
		_, err := b.Users().Create(ctx, types.User{ChatID: chat, ReferredBy: referrer.UserID})
		require.NoError(t, err)
	}
	n, err := b.Users().CountReferrals(ctx, referrer.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = b.Users().GetByReferralCode(ctx, "NOPE0000")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = b.Users().GetByReferralCode(ctx, "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUsers_SetLanguageAndTimezone(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()
	u := createUser(t, b, 5)

	require.NoError(t, b.Users().SetLanguage(ctx, u.UserID, types.English))
	require.NoError(t, b.Users().SetTimezone(ctx, u.UserID, "Europe/Lisbon"))

	got, err := b.Users().GetByChatID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, types.English, got.Language)
	assert.Equal(t, "Europe/Lisbon", got.Timezone)

	assert.ErrorIs(t, b.Users().SetLanguage(ctx, 999, types.English), types.ErrNotFound)
}
