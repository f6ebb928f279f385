package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ServiceView struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	BasePriceCents     int64    `json:"base_price_cents"`
	OriginalPriceCents *int64   `json:"original_price_cents,omitempty"`
	Features           []string `json:"features"`
	IsPackage          bool     `json:"is_package"`
	BundledServiceIDs  []string `json:"bundled_service_ids,omitempty"`
}

type AddOnView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"price_cents"`
	Billing        string `json:"billing"`
	DurationMonths int    `json:"duration_months,omitempty"`
}

type CatalogView struct {
	Services []ServiceView `json:"services"`
	AddOns   []AddOnView   `json:"add_ons"`
}

// PromotionView is advisory: the authoritative availability decision is the
// reserve call during checkout, never this snapshot.
type PromotionView struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"service_id"`
	Kind          string  `json:"kind"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	QuantityLimit int     `json:"quantity_limit"`
	QuantityUsed  int     `json:"quantity_used"`
	Remaining     int     `json:"remaining"`
	Active        bool    `json:"active"`
}

type QuoteView struct {
	ListPriceCents       int64 `json:"list_price_cents"`
	DiscountedPriceCents int64 `json:"discounted_price_cents"`
	AddOnTotalCents      int64 `json:"add_on_total_cents"`
	GrandTotalCents      int64 `json:"grand_total_cents"`
	IsFree               bool  `json:"is_free"`
	PromotionApplied     bool  `json:"promotion_applied"`
}

type GrantView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ServiceID     string    `json:"service_id"`
	ReservationID string    `json:"reservation_id,omitempty"`
	PriceCents    int64     `json:"price_cents"`
	CreatedAt     time.Time `json:"created_at"`
}
