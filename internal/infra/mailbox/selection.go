package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"studio-checkout/internal/domain/selection"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/infra/kv"
	"studio-checkout/internal/pkg/config"

	"github.com/google/uuid"
)

type pendingSelectionDTO struct {
	ServiceID   string    `json:"service_id"`
	AddOnIDs    []string  `json:"add_on_ids"`
	PromotionID string    `json:"promotion_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SelectionMailbox persists the pending selection across the login redirect.
// One slot per checkout session, write-once/read-once: Put overwrites any
// prior slot (last write wins) and Take consumes it atomically so a
// browser-retried resume sees an empty mailbox the second time.
type SelectionMailbox struct {
	store  kv.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewSelectionMailbox(store kv.Store, cfg config.CheckoutConfig) *SelectionMailbox {
	return &SelectionMailbox{
		store:  store,
		ttl:    cfg.PendingSelectionTTL,
		logger: slog.Default(),
	}
}

func (m *SelectionMailbox) Put(ctx context.Context, sessionID uuid.UUID, sel *selection.PendingSelection) error {
	dto := pendingSelectionDTO{
		ServiceID:   sel.ServiceID(),
		AddOnIDs:    sel.AddOnIDs(),
		PromotionID: sel.PromotionID(),
		CreatedAt:   sel.CreatedAt(),
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindCacheFailure, "failed to encode pending selection", err)
	}

	if err := m.store.Set(ctx, slotKey(sessionID), string(raw), m.ttl); err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindCacheFailure, "failed to persist pending selection", err)
	}
	return nil
}

// Take reads and deletes the slot in one step. A malformed payload is
// reported as a decode failure; the slot is already gone by then, which is
// exactly the discard-and-restart behavior callers want.
func (m *SelectionMailbox) Take(ctx context.Context, sessionID uuid.UUID) (*selection.PendingSelection, error) {
	raw, err := m.store.GetDel(ctx, slotKey(sessionID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "no pending selection", err)
		}
		return nil, infra.WrapRepoErr(m.logger, infra.KindCacheFailure, "failed to read pending selection", err)
	}

	var dto pendingSelectionDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil, infra.WrapRepoErr(m.logger, infra.KindDecodeFailure, "pending selection corrupt", err)
	}

	sel, err := selection.NewPendingSelection(dto.ServiceID, dto.AddOnIDs, dto.PromotionID, dto.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(m.logger, infra.KindDecodeFailure, "pending selection invalid", err)
	}
	return sel, nil
}

func slotKey(sessionID uuid.UUID) string {
	return "checkout:pending:" + sessionID.String()
}
