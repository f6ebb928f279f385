//go:build unit || e2e

package builder

import (
	"studio-checkout/internal/domain/promotion"
)

type PromotionBuilder struct {
	ID            string
	ServiceID     string
	Kind          promotion.Kind
	DiscountValue float64
	QuantityLimit int
	QuantityUsed  int
	Active        bool
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:            "promo-standard-20",
		ServiceID:     "standard",
		Kind:          promotion.KindPercentDiscount,
		DiscountValue: 20,
		QuantityLimit: 30,
		QuantityUsed:  0,
		Active:        true,
	}
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	return promotion.NewPromotion(b.ID, b.ServiceID, b.Kind, b.DiscountValue, b.QuantityLimit, b.QuantityUsed, b.Active)
}

// MustBuild panics on invalid fixture data; test setup only.
func (b *PromotionBuilder) MustBuild() *promotion.Promotion {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PromotionBuilder) BuildSnapshot() promotion.Snapshot {
	p := b.MustBuild()
	return promotion.Snapshot{p.ServiceID(): p}
}

// Fluent builder methods
func (b *PromotionBuilder) WithID(id string) *PromotionBuilder {
	b.ID = id
	return b
}

func (b *PromotionBuilder) WithServiceID(serviceID string) *PromotionBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *PromotionBuilder) WithDiscount(value float64) *PromotionBuilder {
	b.Kind = promotion.KindPercentDiscount
	b.DiscountValue = value
	return b
}

func (b *PromotionBuilder) WithQuantity(limit, used int) *PromotionBuilder {
	b.QuantityLimit = limit
	b.QuantityUsed = used
	return b
}

func (b *PromotionBuilder) AsFree() *PromotionBuilder {
	b.Kind = promotion.KindFree
	b.DiscountValue = 0
	return b
}

func (b *PromotionBuilder) AsExhausted() *PromotionBuilder {
	b.QuantityUsed = b.QuantityLimit
	return b
}

func (b *PromotionBuilder) AsInactive() *PromotionBuilder {
	b.Active = false
	return b
}
