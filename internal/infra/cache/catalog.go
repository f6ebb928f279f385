package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/infra/kv"
	"studio-checkout/internal/pkg/clock"
	"studio-checkout/internal/pkg/config"
)

const snapshotKey = "checkout:catalog:snapshot"

// Source is the upstream catalog contract the cache refreshes from.
type Source interface {
	LastUpdated(ctx context.Context) (string, error)
	FetchCatalog(ctx context.Context) (*catalog.Catalog, error)
}

type snapshotService struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	BasePrice         int64    `json:"base_price"`
	OriginalPrice     *int64   `json:"original_price,omitempty"`
	Features          []string `json:"features"`
	IsPackage         bool     `json:"is_package"`
	BundledServiceIDs []string `json:"bundled_service_ids,omitempty"`
}

type snapshotAddOn struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Billing        string `json:"billing"`
	DurationMonths int    `json:"duration_months,omitempty"`
}

type snapshot struct {
	Services        []snapshotService `json:"services"`
	AddOns          []snapshotAddOn   `json:"add_ons"`
	ServerTimestamp string            `json:"server_timestamp"`
	FetchedAt       time.Time         `json:"fetched_at"`
}

// CatalogCache serves the freshest known catalog. A cached snapshot is fresh
// only while it is younger than the TTL and its server timestamp still
// matches the upstream probe. Fetch failures degrade to the last good
// snapshot, then to the hard-coded default catalog; they never propagate.
type CatalogCache struct {
	source Source
	store  kv.Store
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewCatalogCache(source Source, store kv.Store, cfg config.CheckoutConfig, clk clock.Clock) *CatalogCache {
	return &CatalogCache{
		source: source,
		store:  store,
		ttl:    cfg.CatalogTTL,
		clock:  clk,
		logger: slog.Default(),
	}
}

func (c *CatalogCache) GetCatalog(ctx context.Context) *catalog.Catalog {
	snap := c.load(ctx)

	if snap != nil && c.clock.Now().Sub(snap.FetchedAt) < c.ttl {
		probe, err := c.source.LastUpdated(ctx)
		if err != nil {
			// Probe failed: a stale snapshot still beats a doomed refetch.
			c.logger.Warn("catalog freshness probe failed, serving cached snapshot", "error", err)
			return toCatalog(snap)
		}
		if probe == snap.ServerTimestamp {
			return toCatalog(snap)
		}
	}

	return c.refetch(ctx, snap)
}

func (c *CatalogCache) refetch(ctx context.Context, prev *snapshot) *catalog.Catalog {
	serverTS, err := c.source.LastUpdated(ctx)
	if err != nil {
		c.logger.Warn("catalog last-updated probe failed", "error", err)
		serverTS = ""
	}

	cat, err := c.source.FetchCatalog(ctx)
	if err != nil {
		c.logger.Warn("catalog fetch failed", "error", err)
		if prev != nil {
			return toCatalog(prev)
		}
		return catalog.DefaultCatalog()
	}

	c.persist(ctx, cat, serverTS)
	return cat
}

func (c *CatalogCache) load(ctx context.Context) *snapshot {
	raw, err := c.store.Get(ctx, snapshotKey)
	if err != nil {
		if err != kv.ErrNotFound {
			c.logger.Warn("failed to read catalog snapshot", "error", err)
		}
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		c.logger.Warn("discarding corrupt catalog snapshot", "error", err)
		return nil
	}
	return &snap
}

func (c *CatalogCache) persist(ctx context.Context, cat *catalog.Catalog, serverTS string) {
	snap := fromCatalog(cat, serverTS, c.clock.Now())
	raw, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("failed to encode catalog snapshot", "error", err)
		return
	}
	// No expiry: the stale copy is the fallback when the upstream is down.
	if err := c.store.Set(ctx, snapshotKey, string(raw), 0); err != nil {
		c.logger.Warn("failed to persist catalog snapshot", "error", err)
	}
}

func fromCatalog(cat *catalog.Catalog, serverTS string, fetchedAt time.Time) snapshot {
	snap := snapshot{ServerTimestamp: serverTS, FetchedAt: fetchedAt}
	for _, svc := range cat.Services() {
		snap.Services = append(snap.Services, snapshotService{
			ID:                svc.ID(),
			Title:             svc.Title(),
			Description:       svc.Description(),
			BasePrice:         svc.BasePriceCents(),
			OriginalPrice:     svc.OriginalPriceCents(),
			Features:          svc.Features(),
			IsPackage:         svc.IsPackage(),
			BundledServiceIDs: svc.BundledServiceIDs(),
		})
	}
	for _, addOn := range cat.AddOns() {
		snap.AddOns = append(snap.AddOns, snapshotAddOn{
			ID:             addOn.ID(),
			Name:           addOn.Name(),
			Price:          addOn.PriceCents(),
			Billing:        string(addOn.Billing().Kind()),
			DurationMonths: addOn.Billing().DurationMonths(),
		})
	}
	return snap
}

func toCatalog(snap *snapshot) *catalog.Catalog {
	services := make([]*catalog.Service, 0, len(snap.Services))
	for _, dto := range snap.Services {
		var (
			svc *catalog.Service
			err error
		)
		if dto.IsPackage {
			svc, err = catalog.NewPackage(dto.ID, dto.Title, dto.Description, dto.BasePrice, dto.OriginalPrice, dto.Features, dto.BundledServiceIDs)
		} else {
			svc, err = catalog.NewService(dto.ID, dto.Title, dto.Description, dto.BasePrice, dto.OriginalPrice, dto.Features)
		}
		if err != nil {
			slog.Warn("skipping invalid service in cached snapshot", "service_id", dto.ID, "error", err)
			continue
		}
		services = append(services, svc)
	}

	addOns := make([]*catalog.AddOn, 0, len(snap.AddOns))
	for _, dto := range snap.AddOns {
		billing := catalog.OneTimeBilling()
		if dto.Billing == string(catalog.BillingRecurring) {
			var err error
			billing, err = catalog.RecurringBilling(dto.DurationMonths)
			if err != nil {
				slog.Warn("skipping invalid add-on in cached snapshot", "add_on_id", dto.ID, "error", err)
				continue
			}
		}
		addOn, err := catalog.NewAddOn(dto.ID, dto.Name, dto.Price, billing)
		if err != nil {
			slog.Warn("skipping invalid add-on in cached snapshot", "add_on_id", dto.ID, "error", err)
			continue
		}
		addOns = append(addOns, addOn)
	}

	return catalog.NewCatalog(services, addOns)
}
