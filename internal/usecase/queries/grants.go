package queries

import (
	"context"

	"studio-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

type GrantReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*GrantView, error)
}

type GrantQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*GrantView, error)
}

type grantQueriesImpl struct {
	readStore GrantReadStore
}

func NewGrantQueries(readStore GrantReadStore) GrantQueries {
	return &grantQueriesImpl{readStore: readStore}
}

func (q *grantQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*GrantView, error) {
	grants, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user grants")
	}
	return grants, nil
}
