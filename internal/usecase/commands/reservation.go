package commands

import (
	"context"
	"log/slog"

	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/pkg/errs"
)

var (
	ErrPromotionExhausted     = errs.New("promotion exhausted")
	ErrReservationUnavailable = errs.New("reservation service unavailable")
)

// ReservationController drives the reserve → confirm protocol for one
// checkout attempt. Release is implicit: the backend expires unconfirmed
// reservations after a bounded TTL, so an abandoned checkout can never lock
// a scarce slot forever.
type ReservationController struct {
	gateway PromotionGateway
}

func NewReservationController(gateway PromotionGateway) *ReservationController {
	return &ReservationController{gateway: gateway}
}

// Reserve claims one unit of the promotion. ErrPromotionExhausted signals
// the expected race with other clients; ErrReservationUnavailable covers
// network trouble. Both mean "continue at full price" to the caller.
func (c *ReservationController) Reserve(ctx context.Context, promo *promotion.Promotion) (*promotion.Reservation, error) {
	res, err := c.gateway.Reserve(ctx, promo.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrPromotionExhausted)
		}
		return nil, errs.Mark(err, ErrReservationUnavailable)
	}
	return res, nil
}

// ConfirmAfterSuccess confirms the reservation once the terminal checkout
// action has succeeded. A confirm failure at this point is a logged anomaly:
// the user already received the benefit, and reconciliation belongs to the
// backend.
func (c *ReservationController) ConfirmAfterSuccess(ctx context.Context, res *promotion.Reservation) {
	if res == nil {
		return
	}
	if err := res.Confirm(); err != nil {
		slog.Warn("reservation not confirmable", "reservation_id", res.ID(), "status", res.Status(), "error", err)
		return
	}
	if err := c.gateway.Confirm(ctx, res.ID()); err != nil {
		slog.Error("reservation confirm failed after successful checkout",
			"reservation_id", res.ID(), "promotion_id", res.PromotionID(), "error", err)
	}
}
