package api

import (
	"errors"
	"net/http"

	"studio-checkout/internal/domain/pricing"
	reqdto "studio-checkout/internal/handler/dto/request"
	resdto "studio-checkout/internal/handler/dto/response"
	"studio-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary Get catalog
// @Description Current service and add-on catalog with pricing
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	view := h.catalogQueries.GetCatalog(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCatalogView(view))
}

// @Summary Get promotions
// @Description Active promotions keyed by service. Degrades to an empty set when the promotion upstream is unavailable.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]resdto.PromotionResponse
// @Router /promotions [get]
func (h *CatalogHandler) GetPromotions(c *gin.Context) {
	views := h.catalogQueries.GetPromotions(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary Quote a selection
// @Description Price a service plus add-ons with any applicable promotion, without reserving anything
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Selection to price"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote [post]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sel := pricing.Selection{ServiceID: req.ServiceID, AddOnIDs: req.AddOnIDs}
	view, err := h.catalogQueries.Quote(c.Request.Context(), sel)
	if err != nil {
		if errors.Is(err, queries.ErrCatalogMismatch) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Selection references an unknown catalog item",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
