package queries

import (
	"context"
	"log/slog"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/domain/pricing"
	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/pkg/errs"
)

var ErrCatalogMismatch = errs.New("catalog mismatch")

// CatalogProvider serves the freshest known catalog; it degrades instead of
// failing, so there is no error return.
type CatalogProvider interface {
	GetCatalog(ctx context.Context) *catalog.Catalog
}

// PromotionReader is the read-side slice of the promotion source.
type PromotionReader interface {
	FetchAll(ctx context.Context) (promotion.Snapshot, error)
}

type CatalogQueries interface {
	GetCatalog(ctx context.Context) *CatalogView
	GetPromotions(ctx context.Context) map[string]*PromotionView
	Quote(ctx context.Context, sel pricing.Selection) (*QuoteView, error)
}

type catalogQueriesImpl struct {
	catalogProvider CatalogProvider
	promotions      PromotionReader
}

func NewCatalogQueries(catalogProvider CatalogProvider, promotions PromotionReader) CatalogQueries {
	return &catalogQueriesImpl{
		catalogProvider: catalogProvider,
		promotions:      promotions,
	}
}

func (q *catalogQueriesImpl) GetCatalog(ctx context.Context) *CatalogView {
	cat := q.catalogProvider.GetCatalog(ctx)

	view := &CatalogView{}
	for _, svc := range cat.Services() {
		view.Services = append(view.Services, ServiceView{
			ID:                 svc.ID(),
			Title:              svc.Title(),
			Description:        svc.Description(),
			BasePriceCents:     svc.BasePriceCents(),
			OriginalPriceCents: svc.OriginalPriceCents(),
			Features:           svc.Features(),
			IsPackage:          svc.IsPackage(),
			BundledServiceIDs:  svc.BundledServiceIDs(),
		})
	}
	for _, addOn := range cat.AddOns() {
		view.AddOns = append(view.AddOns, AddOnView{
			ID:             addOn.ID(),
			Name:           addOn.Name(),
			PriceCents:     addOn.PriceCents(),
			Billing:        string(addOn.Billing().Kind()),
			DurationMonths: addOn.Billing().DurationMonths(),
		})
	}
	return view
}

func (q *catalogQueriesImpl) GetPromotions(ctx context.Context) map[string]*PromotionView {
	snapshot, err := q.promotions.FetchAll(ctx)
	if err != nil {
		// Advisory data: an empty map degrades the display, not the purchase.
		slog.Warn("promotion refresh failed", "error", err)
		return map[string]*PromotionView{}
	}

	views := make(map[string]*PromotionView, len(snapshot))
	for serviceID, promo := range snapshot {
		views[serviceID] = &PromotionView{
			ID:            promo.ID(),
			ServiceID:     promo.ServiceID(),
			Kind:          string(promo.Kind()),
			DiscountValue: promo.DiscountValue(),
			QuantityLimit: promo.QuantityLimit(),
			QuantityUsed:  promo.QuantityUsed(),
			Remaining:     promo.Remaining(),
			Active:        promo.Active(),
		}
	}
	return views
}

// Quote prices a selection without reserving anything. The result is
// advisory; checkout recomputes from fresh state.
func (q *catalogQueriesImpl) Quote(ctx context.Context, sel pricing.Selection) (*QuoteView, error) {
	cat := q.catalogProvider.GetCatalog(ctx)

	var promo *promotion.Promotion
	if snapshot, err := q.promotions.FetchAll(ctx); err == nil {
		promo = snapshot.Applicable(sel.ServiceID)
	} else {
		slog.Warn("promotion refresh failed, quoting without promotion", "error", err)
	}

	quote, err := pricing.ComputeTotal(sel, cat, promo)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogMismatch)
	}

	return &QuoteView{
		ListPriceCents:       quote.ListPriceCents,
		DiscountedPriceCents: quote.DiscountedPriceCents,
		AddOnTotalCents:      quote.AddOnTotalCents,
		GrandTotalCents:      quote.GrandTotalCents,
		IsFree:               quote.IsFree,
		PromotionApplied:     quote.PromotionApplied,
	}, nil
}
