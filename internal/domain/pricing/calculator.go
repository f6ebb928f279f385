package pricing

import (
	"errors"
	"math"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/domain/promotion"
)

// ErrCatalogMismatch means the selection references an id the catalog does
// not know. It is never recovered locally: silently dropping the unknown
// item would under-charge.
var ErrCatalogMismatch = errors.New("selection references an unknown catalog item")

type Selection struct {
	ServiceID string
	AddOnIDs  []string
}

// Quote is the derived price for one selection. All amounts are in the
// currency's minor unit.
type Quote struct {
	ListPriceCents       int64
	DiscountedPriceCents int64
	AddOnTotalCents      int64
	GrandTotalCents      int64
	IsFree               bool
	PromotionApplied     bool
}

// ComputeTotal derives the final price from the selection, the catalog
// snapshot and the (possibly nil) promotion for the selected service.
//
// A FREE promotion zeroes only the base item; add-ons are always charged at
// full price. Percent discounts round half-up to the minor unit.
func ComputeTotal(sel Selection, cat *catalog.Catalog, promo *promotion.Promotion) (Quote, error) {
	svc, err := cat.Service(sel.ServiceID)
	if err != nil {
		return Quote{}, ErrCatalogMismatch
	}

	base := svc.BasePriceCents()
	discounted := base
	applied := false

	if promo != nil && promo.AppliesTo(sel.ServiceID) {
		switch promo.Kind() {
		case promotion.KindFree:
			discounted = 0
		case promotion.KindPercentDiscount:
			discounted = roundHalfUp(float64(base) * (100.0 - promo.DiscountValue()) / 100.0)
		}
		applied = true
	}

	var addOnTotal int64
	for _, id := range sel.AddOnIDs {
		addOn, err := cat.AddOn(id)
		if err != nil {
			return Quote{}, ErrCatalogMismatch
		}
		addOnTotal += addOn.PriceCents()
	}

	grand := discounted + addOnTotal
	return Quote{
		ListPriceCents:       base,
		DiscountedPriceCents: discounted,
		AddOnTotalCents:      addOnTotal,
		GrandTotalCents:      grand,
		IsFree:               grand == 0,
		PromotionApplied:     applied,
	}, nil
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
