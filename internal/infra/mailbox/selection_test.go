//go:build unit

package mailbox_test

import (
	"context"
	"testing"
	"time"

	"studio-checkout/internal/domain/selection"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/infra/kv"
	"studio-checkout/internal/infra/mailbox"
	"studio-checkout/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMailbox() (*mailbox.SelectionMailbox, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	return mailbox.NewSelectionMailbox(store, config.NewTestConfig().Checkout), store
}

func newSelection(t *testing.T) *selection.PendingSelection {
	t.Helper()
	sel, err := selection.NewPendingSelection("standard", []string{"domain"}, "promo-standard-20", time.Now().UTC())
	require.NoError(t, err)
	return sel
}

func TestSelectionMailbox_PutTake(t *testing.T) {
	ctx := context.Background()

	t.Run("take returns what put stored", func(t *testing.T) {
		mb, _ := newMailbox()
		sessionID := uuid.New()
		stored := newSelection(t)

		require.NoError(t, mb.Put(ctx, sessionID, stored))

		got, err := mb.Take(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, stored.ServiceID(), got.ServiceID())
		assert.Equal(t, stored.AddOnIDs(), got.AddOnIDs())
		assert.Equal(t, stored.PromotionID(), got.PromotionID())
	})

	t.Run("take consumes the slot", func(t *testing.T) {
		mb, _ := newMailbox()
		sessionID := uuid.New()

		require.NoError(t, mb.Put(ctx, sessionID, newSelection(t)))

		_, err := mb.Take(ctx, sessionID)
		require.NoError(t, err)

		_, err = mb.Take(ctx, sessionID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("empty mailbox reports not found", func(t *testing.T) {
		mb, _ := newMailbox()

		_, err := mb.Take(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("put overwrites a prior slot", func(t *testing.T) {
		mb, _ := newMailbox()
		sessionID := uuid.New()

		require.NoError(t, mb.Put(ctx, sessionID, newSelection(t)))

		replacement, err := selection.NewPendingSelection("premium", nil, "", time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, mb.Put(ctx, sessionID, replacement))

		got, err := mb.Take(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "premium", got.ServiceID())
	})

	t.Run("sessions do not share slots", func(t *testing.T) {
		mb, _ := newMailbox()
		a, b := uuid.New(), uuid.New()

		require.NoError(t, mb.Put(ctx, a, newSelection(t)))

		_, err := mb.Take(ctx, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = mb.Take(ctx, a)
		assert.NoError(t, err)
	})
}

func TestSelectionMailbox_Corrupt(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt payload reports decode failure and clears the slot", func(t *testing.T) {
		mb, store := newMailbox()
		sessionID := uuid.New()

		require.NoError(t, store.Set(ctx, "checkout:pending:"+sessionID.String(), "{not json", 0))

		_, err := mb.Take(ctx, sessionID)
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))

		// GetDel already removed the slot; the next take starts clean.
		_, err = mb.Take(ctx, sessionID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("decoded payload missing a service id is invalid", func(t *testing.T) {
		mb, store := newMailbox()
		sessionID := uuid.New()

		require.NoError(t, store.Set(ctx, "checkout:pending:"+sessionID.String(), `{"add_on_ids":["domain"]}`, 0))

		_, err := mb.Take(ctx, sessionID)
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
	})
}
