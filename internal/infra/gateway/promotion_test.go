//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-checkout/internal/domain/promotion"
	"studio-checkout/internal/infra"
	"studio-checkout/internal/infra/gateway"
	"studio-checkout/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromotionGateway(serverURL string) *gateway.PromotionGateway {
	return gateway.NewPromotionGateway(config.UpstreamConfig{
		CatalogBaseURL:   serverURL,
		PromotionBaseURL: serverURL,
		HTTPTimeout:      2 * time.Second,
	})
}

func TestPromotionGateway_FetchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the response keyed by service id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/promotions", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"standard": {"id":"promo-standard-20","serviceId":"standard","kind":"PERCENT_DISCOUNT","discountValue":20,"quantityLimit":30,"quantityUsed":3,"active":true},
				"basic": {"id":"promo-basic-free","serviceId":"basic","kind":"FREE","quantityLimit":5,"quantityUsed":5,"active":true}
			}`))
		}))
		defer server.Close()

		snap, err := newPromotionGateway(server.URL).FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, snap, 2)

		std := snap.For("standard")
		require.NotNil(t, std)
		assert.Equal(t, promotion.KindPercentDiscount, std.Kind())
		assert.Equal(t, 27, std.Remaining())

		free := snap.For("basic")
		require.NotNil(t, free)
		assert.True(t, free.Exhausted())
		assert.Nil(t, snap.Applicable("basic"))
	})

	t.Run("malformed entries are skipped, valid ones kept", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"standard": {"id":"promo-standard-20","serviceId":"standard","kind":"PERCENT_DISCOUNT","discountValue":20,"quantityLimit":30,"quantityUsed":0,"active":true},
				"premium": {"id":"promo-bad","serviceId":"premium","kind":"BOGOF","quantityLimit":1,"quantityUsed":0,"active":true}
			}`))
		}))
		defer server.Close()

		snap, err := newPromotionGateway(server.URL).FetchAll(ctx)
		require.NoError(t, err)
		assert.Len(t, snap, 1)
		assert.NotNil(t, snap.For("standard"))
		assert.Nil(t, snap.For("premium"))
	})

	t.Run("non-200 status is an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newPromotionGateway(server.URL).FetchAll(ctx)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})

	t.Run("unreachable upstream is an upstream failure", func(t *testing.T) {
		_, err := newPromotionGateway("http://127.0.0.1:1").FetchAll(ctx)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}

func TestPromotionGateway_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("successful reserve yields a reserved reservation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/promotions/promo-standard-20/reserve", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"rsv-1","promotionId":"promo-standard-20","createdAt":"2026-09-01T10:00:00Z"}`))
		}))
		defer server.Close()

		res, err := newPromotionGateway(server.URL).Reserve(ctx, "promo-standard-20")
		require.NoError(t, err)
		assert.Equal(t, "rsv-1", res.ID())
		assert.Equal(t, "promo-standard-20", res.PromotionID())
		assert.Equal(t, promotion.StatusReserved, res.Status())
	})

	t.Run("409 means the promotion raced to exhaustion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		_, err := newPromotionGateway(server.URL).Reserve(ctx, "promo-standard-20")
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("other error statuses are upstream failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newPromotionGateway(server.URL).Reserve(ctx, "promo-standard-20")
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}

func TestPromotionGateway_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm posts to the reservation endpoint", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := newPromotionGateway(server.URL).Confirm(ctx, "rsv-1")
		require.NoError(t, err)
		assert.Equal(t, "/promotions/reservations/rsv-1/confirm", gotPath)
	})

	t.Run("failed confirm surfaces as an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := newPromotionGateway(server.URL).Confirm(ctx, "rsv-gone")
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}
