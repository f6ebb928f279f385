//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"studio-checkout/internal/handler/api"
	resdto "studio-checkout/internal/handler/dto/response"
	"studio-checkout/internal/pkg/cookie"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"
	"studio-checkout/tests/common/httptest"
	"studio-checkout/tests/common/testutil"
	commandsmock "studio-checkout/tests/mock/commands"
	queriesmock "studio-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockGrants   *queriesmock.MockGrantQueries
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockGrants = queriesmock.NewMockGrantQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockGrants)
	s.userID = uuid.New()

	// Mock middleware behavior: an Authorization header marks the caller
	// authenticated as s.userID.
	withOptionalAuth := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.POST("/api/checkout", withOptionalAuth(s.handler.Checkout))
	s.router.POST("/api/checkout/resume", withOptionalAuth(s.handler.Resume))
	s.router.GET("/api/grants", withOptionalAuth(s.handler.ListGrants))
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"
	reqBody := map[string]any{"serviceId": "standard", "addOnIds": []string{"domain"}}

	s.Run("success: anonymous caller gets a login redirect and a session cookie", func() {
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), gomock.Any(), nil, commands.CheckoutParams{
				ServiceID: "standard",
				AddOnIDs:  []string{"domain"},
			}).
			Return(&commands.CheckoutResult{
				Outcome:     commands.OutcomeLoginRequired,
				RedirectURL: "/login?redirect=%2Fapi%2Fcheckout%2Fresume",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("login_required", response.Outcome)
		s.Contains(response.RedirectURL, "/login")

		session := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(session)
		_, err := uuid.Parse(session.Value)
		s.NoError(err)
	})

	s.Run("success: authenticated caller is sent to payment", func() {
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()), gomock.Any()).
			Return(&commands.CheckoutResult{
				Outcome:       commands.OutcomePaymentRedirect,
				RedirectURL:   "/payment?itemId=standard&grandTotal=56000",
				Quote:         &queries.QuoteView{GrandTotalCents: 56000, PromotionApplied: true},
				ReservationID: "rsv-1",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("payment_redirect", response.Outcome)
		s.Equal("rsv-1", response.ReservationID)
		s.Require().NotNil(response.Quote)
		s.Equal(int64(56000), response.Quote.GrandTotalCents)
	})

	s.Run("success: an existing session cookie is reused", func() {
		sessionID := uuid.New()
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), sessionID, nil, gomock.Any()).
			Return(&commands.CheckoutResult{Outcome: commands.OutcomeLoginRequired, RedirectURL: "/login"}, nil).
			Times(1)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: sessionID.String()}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "empty serviceId", mutate: testutil.Field("serviceId", "")},
			{name: "empty add-on id entry", mutate: testutil.Field("addOnIds", []string{""})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 on catalog mismatch", func() {
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCatalogMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unknown catalog item")
	})

	s.Run("error: 500 on grant failure", func() {
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrGrantFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CheckoutHandlerTestSuite) TestResume() {
	url := "/api/checkout/resume"

	s.Run("success: parked checkout completes", func() {
		s.mockCommands.EXPECT().
			Resume(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CheckoutResult{
				Outcome:     commands.OutcomePaymentRedirect,
				RedirectURL: "/payment?itemId=standard&grandTotal=70000",
				Quote:       &queries.QuoteView{GrandTotalCents: 70000},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "some-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("payment_redirect", response.Outcome)
	})

	s.Run("error: 404 when there is nothing to resume", func() {
		s.mockCommands.EXPECT().
			Resume(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrNoPendingSelection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No pending selection")
	})

	s.Run("error: 409 when the stored selection was corrupt", func() {
		s.mockCommands.EXPECT().
			Resume(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrSelectionCorrupt).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "restart checkout")
	})
}

func (s *CheckoutHandlerTestSuite) TestListGrants() {
	url := "/api/grants"

	s.Run("success: returns the user's grants", func() {
		grantID := uuid.New()
		s.mockGrants.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return([]*queries.GrantView{
				{ID: grantID, UserID: s.userID, ServiceID: "basic", ReservationID: "rsv-free", PriceCents: 0, CreatedAt: time.Now().UTC()},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response []*resdto.GrantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(grantID, response[0].ID)
		s.Equal("basic", response[0].ServiceID)
	})

	s.Run("success: empty list for a user with no grants", func() {
		s.mockGrants.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return([]*queries.GrantView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response []*resdto.GrantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}
