//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/tests/common/builder"
	commandsmock "studio-checkout/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationController_Reserve(t *testing.T) {
	ctx := context.Background()
	promo := builder.NewPromotionBuilder().MustBuild()

	t.Run("passes the reservation through on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		res, err := promotion.NewReservation("rsv-1", promo.ID(), time.Now())
		require.NoError(t, err)
		gw.EXPECT().Reserve(gomock.Any(), promo.ID()).Return(res, nil)

		got, err := commands.NewReservationController(gw).Reserve(ctx, promo)
		require.NoError(t, err)
		assert.Equal(t, "rsv-1", got.ID())
	})

	t.Run("conflict maps to promotion exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		gw.EXPECT().Reserve(gomock.Any(), promo.ID()).
			Return(nil, infra.RepositoryError{Kind: infra.KindConflict})

		_, err := commands.NewReservationController(gw).Reserve(ctx, promo)
		assert.ErrorIs(t, err, commands.ErrPromotionExhausted)
	})

	t.Run("anything else maps to reservation unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		gw.EXPECT().Reserve(gomock.Any(), promo.ID()).
			Return(nil, infra.RepositoryError{Kind: infra.KindUpstreamFailure})

		_, err := commands.NewReservationController(gw).Reserve(ctx, promo)
		assert.ErrorIs(t, err, commands.ErrReservationUnavailable)
	})
}

func TestReservationController_ConfirmAfterSuccess(t *testing.T) {
	ctx := context.Background()

	t.Run("nil reservation is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)

		commands.NewReservationController(gw).ConfirmAfterSuccess(ctx, nil)
	})

	t.Run("confirms locally then against the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		res, err := promotion.NewReservation("rsv-1", "promo-standard-20", time.Now())
		require.NoError(t, err)
		gw.EXPECT().Confirm(gomock.Any(), "rsv-1").Return(nil)

		commands.NewReservationController(gw).ConfirmAfterSuccess(ctx, res)
		assert.True(t, res.IsConfirmed())
	})

	t.Run("released reservation is never sent to the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		res, err := promotion.NewReservation("rsv-1", "promo-standard-20", time.Now())
		require.NoError(t, err)
		require.NoError(t, res.Release())

		commands.NewReservationController(gw).ConfirmAfterSuccess(ctx, res)
		assert.False(t, res.IsConfirmed())
	})

	t.Run("backend confirm failure does not panic or undo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockPromotionGateway(ctrl)
		res, err := promotion.NewReservation("rsv-1", "promo-standard-20", time.Now())
		require.NoError(t, err)
		gw.EXPECT().Confirm(gomock.Any(), "rsv-1").
			Return(infra.RepositoryError{Kind: infra.KindUpstreamFailure})

		commands.NewReservationController(gw).ConfirmAfterSuccess(ctx, res)
		assert.True(t, res.IsConfirmed())
	})
}
