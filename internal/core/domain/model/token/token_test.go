package token_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9A-Z]+-[0-9A-Z]{6}-[0-9A-Z]{6}$`)

func mint(t *testing.T, now time.Time) *token.DeliveryToken {
	t.Helper()
	tok, err := token.NewDeliveryToken(kernel.NewUUID(), kernel.NewUUID(), now)
	require.NoError(t, err)
	return tok
}

func TestNewDeliveryToken(t *testing.T) {
	t.Run("mints_an_active_two_hour_token", func(t *testing.T) {
		now := time.Now()

		tok := mint(t, now)

		assert.Regexp(t, codePattern, tok.Code())
		assert.Equal(t, now.Add(token.Validity), tok.ExpiresAt())
		assert.False(t, tok.IsUsed())
		assert.Nil(t, tok.UsedAt())
		assert.Nil(t, tok.NotifiedAt())
		assert.True(t, tok.IsActive(now))
		require.NoError(t, tok.Validate())
	})

	t.Run("codes_are_unique_across_mints", func(t *testing.T) {
		now := time.Now()
		seen := make(map[string]struct{})

		for range 50 {
			tok := mint(t, now)
			_, dup := seen[tok.Code()]
			require.False(t, dup, "duplicate code %s", tok.Code())
			seen[tok.Code()] = struct{}{}
		}
	})

	t.Run("rejects_zero_ids", func(t *testing.T) {
		_, err := token.NewDeliveryToken(kernel.UUID{}, kernel.NewUUID(), time.Now())
		require.Error(t, err)

		_, err = token.NewDeliveryToken(kernel.NewUUID(), kernel.UUID{}, time.Now())
		require.Error(t, err)
	})
}

func TestRestoreDeliveryToken(t *testing.T) {
	t.Run("restores_a_used_token", func(t *testing.T) {
		usedAt := time.Now()

		tok, err := token.RestoreDeliveryToken(
			kernel.NewUUID(), kernel.NewUUID(), "ABC-DEF123-GHI456",
			usedAt.Add(time.Hour), true, &usedAt, nil)

		require.NoError(t, err)
		assert.True(t, tok.IsUsed())
		assert.False(t, tok.IsActive(usedAt))
	})

	t.Run("rejects_blank_code", func(t *testing.T) {
		_, err := token.RestoreDeliveryToken(
			kernel.NewUUID(), kernel.NewUUID(), "  ", time.Now(), false, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliveryToken_Expiry(t *testing.T) {
	now := time.Now()
	tok := mint(t, now)

	assert.False(t, tok.IsExpired(now))
	assert.False(t, tok.IsExpired(now.Add(token.Validity-time.Second)))
	// The window is half-open: the boundary instant is already expired.
	assert.True(t, tok.IsExpired(now.Add(token.Validity)))
	assert.False(t, tok.IsActive(now.Add(token.Validity)))
}

func TestDeliveryToken_Redeem(t *testing.T) {
	t.Run("marks_used_exactly_once", func(t *testing.T) {
		now := time.Now()
		tok := mint(t, now)
		redeemedAt := now.Add(time.Minute)

		require.NoError(t, tok.Redeem(redeemedAt))

		assert.True(t, tok.IsUsed())
		require.NotNil(t, tok.UsedAt())
		assert.Equal(t, redeemedAt, *tok.UsedAt())
		assert.False(t, tok.IsActive(redeemedAt))
	})

	t.Run("second_redeem_reports_invalid_state", func(t *testing.T) {
		now := time.Now()
		tok := mint(t, now)
		require.NoError(t, tok.Redeem(now))

		err := tok.Redeem(now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("expired_token_reports_expiry", func(t *testing.T) {
		now := time.Now()
		tok := mint(t, now)

		err := tok.Redeem(now.Add(token.Validity + time.Minute))

		require.ErrorIs(t, err, errs.ErrTokenExpired)
		assert.False(t, tok.IsUsed())
	})

	t.Run("used_wins_over_expired", func(t *testing.T) {
		now := time.Now()
		tok := mint(t, now)
		require.NoError(t, tok.Redeem(now))

		err := tok.Redeem(now.Add(token.Validity + time.Minute))

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDeliveryToken_MarkNotified(t *testing.T) {
	now := time.Now()
	tok := mint(t, now)

	require.NoError(t, tok.MarkNotified(now))

	require.NotNil(t, tok.NotifiedAt())
	assert.Equal(t, now, *tok.NotifiedAt())
}

func TestDeliveryToken_Validate(t *testing.T) {
	var tok token.DeliveryToken

	require.ErrorIs(t, tok.Validate(), token.ErrDeliveryTokenIsNotConstructed)
	require.Error(t, tok.Redeem(time.Now()))
}
