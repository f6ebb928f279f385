//go:build unit

package pricing_test

import (
	"testing"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/domain/pricing"
	"studio-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	cat := catalog.DefaultCatalog()

	t.Run("no promotion charges the list price", func(t *testing.T) {
		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "standard"}, cat, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(70000), quote.ListPriceCents)
		assert.Equal(t, int64(70000), quote.DiscountedPriceCents)
		assert.Equal(t, int64(0), quote.AddOnTotalCents)
		assert.Equal(t, int64(70000), quote.GrandTotalCents)
		assert.False(t, quote.IsFree)
		assert.False(t, quote.PromotionApplied)
	})

	t.Run("percent discount applies to the base item", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithDiscount(20).MustBuild()

		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "standard"}, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(70000), quote.ListPriceCents)
		assert.Equal(t, int64(56000), quote.DiscountedPriceCents)
		assert.Equal(t, int64(56000), quote.GrandTotalCents)
		assert.True(t, quote.PromotionApplied)
	})

	t.Run("exhausted promotion is ignored and full price charged", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithDiscount(20).AsExhausted().MustBuild()

		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "standard"}, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(70000), quote.GrandTotalCents)
		assert.False(t, quote.PromotionApplied)
	})

	t.Run("free promotion zeroes base but add-ons stay at full price", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithServiceID("basic").AsFree().MustBuild()

		sel := pricing.Selection{ServiceID: "basic", AddOnIDs: []string{"domain"}}
		quote, err := pricing.ComputeTotal(sel, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(50000), quote.ListPriceCents)
		assert.Equal(t, int64(0), quote.DiscountedPriceCents)
		assert.Equal(t, int64(14997), quote.AddOnTotalCents)
		assert.Equal(t, int64(14997), quote.GrandTotalCents)
		assert.False(t, quote.IsFree, "a quote with paid add-ons is never free")
		assert.True(t, quote.PromotionApplied)
	})

	t.Run("free promotion with no add-ons is free", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithServiceID("basic").AsFree().MustBuild()

		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "basic"}, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(0), quote.GrandTotalCents)
		assert.True(t, quote.IsFree)
	})

	t.Run("add-ons sum on top of a discounted base", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithDiscount(20).MustBuild()

		sel := pricing.Selection{ServiceID: "standard", AddOnIDs: []string{"analytics", "seo-audit", "maintenance"}}
		quote, err := pricing.ComputeTotal(sel, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(56000), quote.DiscountedPriceCents)
		assert.Equal(t, int64(74800), quote.AddOnTotalCents)
		assert.Equal(t, int64(130800), quote.GrandTotalCents)
	})

	t.Run("promotion for a different service does not apply", func(t *testing.T) {
		promo := builder.NewPromotionBuilder().WithServiceID("premium").MustBuild()

		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "standard"}, cat, promo)
		require.NoError(t, err)

		assert.Equal(t, int64(70000), quote.GrandTotalCents)
		assert.False(t, quote.PromotionApplied)
	})

	t.Run("discount rounds half up to the minor unit", func(t *testing.T) {
		// 14997 * 0.85 = 12747.45 → 12747; 14997 * 0.75 = 11247.75 → 11248
		svc, err := catalog.NewService("odd", "Odd Priced", "", 14997, nil, nil)
		require.NoError(t, err)
		oddCat := catalog.NewCatalog([]*catalog.Service{svc}, nil)

		p15 := builder.NewPromotionBuilder().WithServiceID("odd").WithDiscount(15).MustBuild()
		quote, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "odd"}, oddCat, p15)
		require.NoError(t, err)
		assert.Equal(t, int64(12747), quote.DiscountedPriceCents)

		p25 := builder.NewPromotionBuilder().WithServiceID("odd").WithDiscount(25).MustBuild()
		quote, err = pricing.ComputeTotal(pricing.Selection{ServiceID: "odd"}, oddCat, p25)
		require.NoError(t, err)
		assert.Equal(t, int64(11248), quote.DiscountedPriceCents)
	})

	t.Run("unknown service id fails loudly", func(t *testing.T) {
		_, err := pricing.ComputeTotal(pricing.Selection{ServiceID: "nope"}, cat, nil)
		assert.ErrorIs(t, err, pricing.ErrCatalogMismatch)
	})

	t.Run("unknown add-on id fails loudly instead of dropping the item", func(t *testing.T) {
		sel := pricing.Selection{ServiceID: "standard", AddOnIDs: []string{"analytics", "nope"}}
		_, err := pricing.ComputeTotal(sel, cat, nil)
		assert.ErrorIs(t, err, pricing.ErrCatalogMismatch)
	})
}
