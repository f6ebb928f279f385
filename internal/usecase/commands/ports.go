package commands

import (
	"context"
	"time"

	"studio-checkout/internal/domain/catalog"
	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/domain/selection"

	"github.com/google/uuid"
)

// CatalogProvider serves the freshest known catalog with built-in
// degradation, hence no error return.
type CatalogProvider interface {
	GetCatalog(ctx context.Context) *catalog.Catalog
}

// PromotionGateway is the client contract against the promotion backend.
// Reserve is atomic from this side: success is never assumed before the
// response arrives.
type PromotionGateway interface {
	FetchAll(ctx context.Context) (promotion.Snapshot, error)
	Reserve(ctx context.Context, promotionID string) (*promotion.Reservation, error)
	Confirm(ctx context.Context, reservationID string) error
}

// SelectionMailbox is the durable slot carrying a selection across the
// login redirect. Put overwrites; Take consumes.
type SelectionMailbox interface {
	Put(ctx context.Context, sessionID uuid.UUID, sel *selection.PendingSelection) error
	Take(ctx context.Context, sessionID uuid.UUID) (*selection.PendingSelection, error)
}

type GrantRepository interface {
	Create(ctx context.Context, rec GrantRecord) (uuid.UUID, error)
}

// Write-side record (keeps the write path free of read-side query types)
type GrantRecord struct {
	UserID        uuid.UUID
	ServiceID     string
	ReservationID string
	PriceCents    int64
	CreatedAt     time.Time
}
