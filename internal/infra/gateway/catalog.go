package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/pkg/config"
)

// Wire shapes of the upstream catalog source.
type serviceDTO struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	BasePrice         int64    `json:"basePrice"`
	OriginalPrice     *int64   `json:"originalPrice,omitempty"`
	Features          []string `json:"features"`
	IsPackage         bool     `json:"isPackage"`
	BundledServiceIDs []string `json:"bundledServiceIds,omitempty"`
}

type addOnDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Billing        string `json:"billing"`
	DurationMonths int    `json:"durationMonths,omitempty"`
}

type lastUpdatedDTO struct {
	LastUpdated string `json:"lastUpdated"`
}

type CatalogGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewCatalogGateway(cfg config.UpstreamConfig) *CatalogGateway {
	return &CatalogGateway{
		baseURL:    cfg.CatalogBaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     slog.Default(),
	}
}

// LastUpdated is the cheap freshness probe against the catalog source.
func (g *CatalogGateway) LastUpdated(ctx context.Context) (string, error) {
	var dto lastUpdatedDTO
	if err := g.getJSON(ctx, g.baseURL+"/services-last-updated", &dto); err != nil {
		return "", err
	}
	return dto.LastUpdated, nil
}

func (g *CatalogGateway) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var serviceDTOs []serviceDTO
	if err := g.getJSON(ctx, g.baseURL+"/services", &serviceDTOs); err != nil {
		return nil, err
	}

	var addOnDTOs []addOnDTO
	if err := g.getJSON(ctx, g.baseURL+"/addons", &addOnDTOs); err != nil {
		return nil, err
	}

	services := make([]*catalog.Service, 0, len(serviceDTOs))
	for _, dto := range serviceDTOs {
		svc, err := toService(dto)
		if err != nil {
			return nil, infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "invalid service in catalog response", err)
		}
		services = append(services, svc)
	}

	addOns := make([]*catalog.AddOn, 0, len(addOnDTOs))
	for _, dto := range addOnDTOs {
		addOn, err := toAddOn(dto)
		if err != nil {
			return nil, infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "invalid add-on in catalog response", err)
		}
		addOns = append(addOns, addOn)
	}

	return catalog.NewCatalog(services, addOns), nil
}

func (g *CatalogGateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "failed to build catalog request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "catalog source unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure,
			fmt.Sprintf("catalog source returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "failed to decode catalog response", err)
	}
	return nil
}

func toService(dto serviceDTO) (*catalog.Service, error) {
	if dto.IsPackage {
		return catalog.NewPackage(dto.ID, dto.Title, dto.Description, dto.BasePrice, dto.OriginalPrice, dto.Features, dto.BundledServiceIDs)
	}
	return catalog.NewService(dto.ID, dto.Title, dto.Description, dto.BasePrice, dto.OriginalPrice, dto.Features)
}

func toAddOn(dto addOnDTO) (*catalog.AddOn, error) {
	billing := catalog.OneTimeBilling()
	if dto.Billing == string(catalog.BillingRecurring) {
		var err error
		billing, err = catalog.RecurringBilling(dto.DurationMonths)
		if err != nil {
			return nil, err
		}
	}
	return catalog.NewAddOn(dto.ID, dto.Name, dto.Price, billing)
}
