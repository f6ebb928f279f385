package commands

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"studio-checkout/internal/domain/pricing"
	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/domain/selection"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/pkg/clock"
	"studio-checkout/internal/pkg/config"
	"studio-checkout/internal/pkg/errs"
	"studio-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCatalogMismatch    = errs.New("catalog mismatch")
	ErrInvalidSelection   = errs.New("invalid selection")
	ErrNoPendingSelection = errs.New("no pending selection")
	ErrSelectionCorrupt   = errs.New("pending selection corrupt")
	ErrGrantFailed        = errs.New("grant persistence failed")
)

// ResumePath is where the login flow sends the user back to.
const ResumePath = "/api/checkout/resume"

type CheckoutParams struct {
	ServiceID string
	AddOnIDs  []string
}

type Outcome string

const (
	OutcomeLoginRequired   Outcome = "login_required"
	OutcomeFreeAssigned    Outcome = "free_assigned"
	OutcomePaymentRedirect Outcome = "payment_redirect"
)

type CheckoutResult struct {
	Outcome       Outcome
	RedirectURL   string
	Quote         *queries.QuoteView
	GrantID       *uuid.UUID
	ReservationID string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID uuid.UUID, userID *uuid.UUID, params CheckoutParams) (*CheckoutResult, error)
	Resume(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	catalogProvider CatalogProvider
	promotions      PromotionGateway
	reservations    *ReservationController
	mailbox         SelectionMailbox
	grants          GrantRepository
	clock           clock.Clock
	cfg             config.CheckoutConfig
}

func NewCheckoutCommands(
	catalogProvider CatalogProvider,
	promotions PromotionGateway,
	reservations *ReservationController,
	mailbox SelectionMailbox,
	grants GrantRepository,
	clk clock.Clock,
	cfg config.CheckoutConfig,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		catalogProvider: catalogProvider,
		promotions:      promotions,
		reservations:    reservations,
		mailbox:         mailbox,
		grants:          grants,
		clock:           clk,
		cfg:             cfg,
	}
}

func (u *checkoutUseCaseImpl) Checkout(
	ctx context.Context,
	sessionID uuid.UUID,
	userID *uuid.UUID,
	params CheckoutParams,
) (*CheckoutResult, error) {
	if userID == nil {
		return u.deferToLogin(ctx, sessionID, params)
	}
	return u.finalize(ctx, *userID, params)
}

// Resume continues a checkout after the auth redirect. The mailbox slot is
// consumed on read, so a browser-retried resume finds it empty and cannot
// run the checkout twice.
func (u *checkoutUseCaseImpl) Resume(
	ctx context.Context,
	sessionID uuid.UUID,
	userID uuid.UUID,
) (*CheckoutResult, error) {
	sel, err := u.mailbox.Take(ctx, sessionID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrNoPendingSelection
		case infra.IsKind(err, infra.KindDecodeFailure):
			// Malformed slot: it is already discarded, the user restarts
			// selection from scratch.
			return nil, errs.Mark(err, ErrSelectionCorrupt)
		default:
			return nil, errs.Wrap(err, "failed to read pending selection")
		}
	}

	return u.finalize(ctx, userID, CheckoutParams{
		ServiceID: sel.ServiceID(),
		AddOnIDs:  sel.AddOnIDs(),
	})
}

func (u *checkoutUseCaseImpl) deferToLogin(
	ctx context.Context,
	sessionID uuid.UUID,
	params CheckoutParams,
) (*CheckoutResult, error) {
	sel, err := selection.NewPendingSelection(params.ServiceID, params.AddOnIDs, "", u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSelection)
	}

	// Last write wins: a fresh attempt replaces whatever was parked before.
	if err := u.mailbox.Put(ctx, sessionID, sel); err != nil {
		return nil, errs.Wrap(err, "failed to persist pending selection")
	}

	loginURL := u.cfg.LoginURL + "?redirect=" + url.QueryEscape(ResumePath)
	return &CheckoutResult{
		Outcome:     OutcomeLoginRequired,
		RedirectURL: loginURL,
	}, nil
}

// finalize runs the Reserving → Finalizing part of the pipeline. Prices are
// always recomputed from fresh catalog and promotion state here; anything
// quoted before a redirect may be stale.
func (u *checkoutUseCaseImpl) finalize(
	ctx context.Context,
	userID uuid.UUID,
	params CheckoutParams,
) (*CheckoutResult, error) {
	cat := u.catalogProvider.GetCatalog(ctx)
	sel := pricing.Selection{ServiceID: params.ServiceID, AddOnIDs: params.AddOnIDs}

	var promo *promotion.Promotion
	if snapshot, err := u.promotions.FetchAll(ctx); err == nil {
		promo = snapshot.Applicable(params.ServiceID)
	} else {
		slog.Warn("promotion refresh failed, checking out without promotion", "error", err)
	}

	quote, err := pricing.ComputeTotal(sel, cat, promo)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogMismatch)
	}

	var reservation *promotion.Reservation
	if promo != nil {
		reservation, err = u.reservations.Reserve(ctx, promo)
		if err != nil {
			// Expected race or network trouble: continue at full price.
			slog.Info("proceeding without promotion", "promotion_id", promo.ID(), "reason", err.Error())
			quote, err = pricing.ComputeTotal(sel, cat, nil)
			if err != nil {
				return nil, errs.Mark(err, ErrCatalogMismatch)
			}
		}
	}

	if quote.IsFree {
		return u.assignFree(ctx, userID, params, quote, reservation)
	}
	return u.redirectToPayment(params, quote, reservation), nil
}

func (u *checkoutUseCaseImpl) assignFree(
	ctx context.Context,
	userID uuid.UUID,
	params CheckoutParams,
	quote pricing.Quote,
	reservation *promotion.Reservation,
) (*CheckoutResult, error) {
	rec := GrantRecord{
		UserID:     userID,
		ServiceID:  params.ServiceID,
		PriceCents: quote.GrandTotalCents,
		CreatedAt:  u.clock.Now(),
	}
	if reservation != nil {
		rec.ReservationID = reservation.ID()
	}

	grantID, err := u.grants.Create(ctx, rec)
	if err != nil {
		return nil, errs.Mark(err, ErrGrantFailed)
	}

	// Confirm only after the grant is durably recorded.
	u.reservations.ConfirmAfterSuccess(ctx, reservation)

	result := &CheckoutResult{
		Outcome:     OutcomeFreeAssigned,
		RedirectURL: u.cfg.DashboardURL,
		Quote:       toQuoteView(quote),
		GrantID:     &grantID,
	}
	if reservation != nil {
		result.ReservationID = reservation.ID()
	}
	return result, nil
}

func (u *checkoutUseCaseImpl) redirectToPayment(
	params CheckoutParams,
	quote pricing.Quote,
	reservation *promotion.Reservation,
) *CheckoutResult {
	v := url.Values{}
	v.Set("itemId", params.ServiceID)
	if len(params.AddOnIDs) > 0 {
		v.Set("addOnIds", strings.Join(params.AddOnIDs, ","))
	}
	v.Set("grandTotal", strconv.FormatInt(quote.GrandTotalCents, 10))
	if reservation != nil {
		// Confirm is deferred to payment success; the payment flow owns it.
		v.Set("reservationId", reservation.ID())
	}

	result := &CheckoutResult{
		Outcome:     OutcomePaymentRedirect,
		RedirectURL: u.cfg.PaymentURL + "?" + v.Encode(),
		Quote:       toQuoteView(quote),
	}
	if reservation != nil {
		result.ReservationID = reservation.ID()
	}
	return result
}

func toQuoteView(q pricing.Quote) *queries.QuoteView {
	return &queries.QuoteView{
		ListPriceCents:       q.ListPriceCents,
		DiscountedPriceCents: q.DiscountedPriceCents,
		AddOnTotalCents:      q.AddOnTotalCents,
		GrandTotalCents:      q.GrandTotalCents,
		IsFree:               q.IsFree,
		PromotionApplied:     q.PromotionApplied,
	}
}
