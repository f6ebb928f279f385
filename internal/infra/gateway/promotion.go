package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/pkg/config"
)

type promotionDTO struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	Kind          string  `json:"kind"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	QuantityLimit int     `json:"quantityLimit"`
	QuantityUsed  int     `json:"quantityUsed"`
	Active        bool    `json:"active"`
}

type reservationDTO struct {
	ID          string    `json:"id"`
	PromotionID string    `json:"promotionId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PromotionGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewPromotionGateway(cfg config.UpstreamConfig) *PromotionGateway {
	return &PromotionGateway{
		baseURL:    cfg.PromotionBaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     slog.Default(),
	}
}

// FetchAll returns the current promotion set keyed by service id. Entries
// the backend sends in an invalid shape are skipped instead of failing the
// whole refresh; scarcity data is advisory anyway.
func (g *PromotionGateway) FetchAll(ctx context.Context) (promotion.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/promotions", nil)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "failed to build promotions request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "promotion source unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure,
			fmt.Sprintf("promotion source returned status %d", resp.StatusCode), nil)
	}

	var dtos map[string]promotionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "failed to decode promotions response", err)
	}

	snapshot := make(promotion.Snapshot, len(dtos))
	for serviceID, dto := range dtos {
		promo, err := promotion.NewPromotion(
			dto.ID, dto.ServiceID, promotion.Kind(dto.Kind),
			dto.DiscountValue, dto.QuantityLimit, dto.QuantityUsed, dto.Active,
		)
		if err != nil {
			g.logger.Warn("skipping malformed promotion", "service_id", serviceID, "error", err)
			continue
		}
		snapshot[serviceID] = promo
	}
	return snapshot, nil
}

// Reserve asks the backend to atomically claim one promotion unit. A 409
// response means the promotion was exhausted by a concurrent client.
func (g *PromotionGateway) Reserve(ctx context.Context, promotionID string) (*promotion.Reservation, error) {
	reserveURL := fmt.Sprintf("%s/promotions/%s/reserve", g.baseURL, url.PathEscape(promotionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reserveURL, bytes.NewReader(nil))
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "failed to build reserve request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "promotion source unreachable", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict:
		return nil, infra.WrapRepoErr(g.logger, infra.KindConflict, "promotion exhausted", nil)
	default:
		return nil, infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure,
			fmt.Sprintf("reserve returned status %d", resp.StatusCode), nil)
	}

	var dto reservationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "failed to decode reservation response", err)
	}

	res, err := promotion.NewReservation(dto.ID, dto.PromotionID, dto.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(g.logger, infra.KindDecodeFailure, "invalid reservation in response", err)
	}
	return res, nil
}

// Confirm marks a reservation permanently consumed.
func (g *PromotionGateway) Confirm(ctx context.Context, reservationID string) error {
	confirmURL := fmt.Sprintf("%s/promotions/reservations/%s/confirm", g.baseURL, url.PathEscape(reservationID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, confirmURL, bytes.NewReader(nil))
	if err != nil {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "failed to build confirm request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure, "promotion source unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapRepoErr(g.logger, infra.KindUpstreamFailure,
			fmt.Sprintf("confirm returned status %d", resp.StatusCode), nil)
	}
	return nil
}
