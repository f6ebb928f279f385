package api

import (
	"errors"
	"net/http"

	reqdto "studio-checkout/internal/handler/dto/request"
	resdto "studio-checkout/internal/handler/dto/response"
	"studio-checkout/internal/handler/middleware"
	"studio-checkout/internal/pkg/cookie"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	grantQueries     queries.GrantQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, grantQueries queries.GrantQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		grantQueries:     grantQueries,
	}
}

// @Summary Begin checkout
// @Description Start a checkout for the selected service and add-ons. Anonymous callers get a login redirect and their selection is parked until they return.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout selection"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := cookie.EnsureSession(c)

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	params := commands.CheckoutParams{
		ServiceID: req.ServiceID,
		AddOnIDs:  req.AddOnIDs,
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), sessionID, userID, params)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Resume checkout
// @Description Continue a checkout parked before the login redirect. The stored selection is consumed on first read.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/resume [post]
func (h *CheckoutHandler) Resume(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	sessionID := cookie.EnsureSession(c)

	result, err := h.checkoutCommands.Resume(c.Request.Context(), sessionID, userID)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary List granted services
// @Description Services granted to the current user via free assignment
// @Tags grants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GrantResponse
// @Failure 401 {object} map[string]string
// @Router /grants [get]
func (h *CheckoutHandler) ListGrants(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	grants, err := h.grantQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GrantResponse, len(grants))
	for i, g := range grants {
		response[i] = resdto.FromGrantView(g)
	}
	c.JSON(http.StatusOK, response)
}

func (h *CheckoutHandler) writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid selection",
		})
	case errors.Is(err, commands.ErrCatalogMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Selection references an unknown catalog item",
		})
	case errors.Is(err, commands.ErrNoPendingSelection):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No pending selection to resume",
		})
	case errors.Is(err, commands.ErrSelectionCorrupt):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Stored selection was unreadable and has been discarded; restart checkout",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
