package repository

import (
	"context"
	"log/slog"

	"studio-checkout/internal/infra"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GrantRepository records free assignments. The unique (user_id, service_id)
// pair makes Create idempotent: a browser-retried resume lands on the same
// grant instead of creating a second one.
type GrantRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewGrantRepository(db *pgxpool.Pool) *GrantRepository {
	return &GrantRepository{
		db:     db,
		logger: slog.Default(),
	}
}

func (r *GrantRepository) Create(ctx context.Context, rec commands.GrantRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO service_grants (id, user_id, service_id, reservation_id, price_cents, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		ON CONFLICT (user_id, service_id) DO UPDATE SET user_id = excluded.user_id
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		uuid.New(), rec.UserID, rec.ServiceID, rec.ReservationID, rec.PriceCents, rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create grant", err)
	}
	return id, nil
}

func (r *GrantRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.GrantView, error) {
	const query = `
		SELECT id, user_id, service_id, COALESCE(reservation_id, ''), price_cents, created_at
		FROM service_grants
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list grants", err)
	}
	defer rows.Close()

	var grants []*queries.GrantView
	for rows.Next() {
		var g queries.GrantView
		if err := rows.Scan(&g.ID, &g.UserID, &g.ServiceID, &g.ReservationID, &g.PriceCents, &g.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan grant row", err)
		}
		grants = append(grants, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate grant rows", err)
	}
	return grants, nil
}
