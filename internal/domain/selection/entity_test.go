//go:build unit

package selection_test

import (
	"testing"
	"time"

	"studio-checkout/internal/domain/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingSelection(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		sel, err := selection.NewPendingSelection("standard", []string{"domain"}, "promo-standard-20", now)
		require.NoError(t, err)

		assert.Equal(t, "standard", sel.ServiceID())
		assert.Equal(t, []string{"domain"}, sel.AddOnIDs())
		assert.Equal(t, "promo-standard-20", sel.PromotionID())
		assert.Equal(t, now, sel.CreatedAt())
	})

	t.Run("promotion id and add-ons are optional", func(t *testing.T) {
		sel, err := selection.NewPendingSelection("standard", nil, "", now)
		require.NoError(t, err)
		assert.Empty(t, sel.AddOnIDs())
		assert.Empty(t, sel.PromotionID())
	})

	t.Run("requires a service id", func(t *testing.T) {
		_, err := selection.NewPendingSelection("", nil, "", now)
		assert.ErrorIs(t, err, selection.ErrEmptyServiceID)
	})

	t.Run("rejects empty add-on ids", func(t *testing.T) {
		_, err := selection.NewPendingSelection("standard", []string{"domain", ""}, "", now)
		assert.ErrorIs(t, err, selection.ErrEmptyAddOnID)
	})
}
