package response

import (
	"time"

	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	ListPriceCents       int64 `json:"listPriceCents"`
	DiscountedPriceCents int64 `json:"discountedPriceCents"`
	AddOnTotalCents      int64 `json:"addOnTotalCents"`
	GrandTotalCents      int64 `json:"grandTotalCents"`
	IsFree               bool  `json:"isFree"`
	PromotionApplied     bool  `json:"promotionApplied"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	if view == nil {
		return nil
	}
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type CheckoutResponse struct {
	Outcome       string         `json:"outcome"`
	RedirectURL   string         `json:"redirectUrl"`
	Quote         *QuoteResponse `json:"quote,omitempty"`
	GrantID       *uuid.UUID     `json:"grantId,omitempty"`
	ReservationID string         `json:"reservationId,omitempty"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Outcome:       string(result.Outcome),
		RedirectURL:   result.RedirectURL,
		Quote:         FromQuoteView(result.Quote),
		GrantID:       result.GrantID,
		ReservationID: result.ReservationID,
	}
}

type GrantResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     string    `json:"serviceId"`
	ReservationID string    `json:"reservationId,omitempty"`
	PriceCents    int64     `json:"priceCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromGrantView(view *queries.GrantView) *GrantResponse {
	var resp GrantResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
