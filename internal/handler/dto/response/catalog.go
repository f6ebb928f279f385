package response

import (
	"studio-checkout/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	BasePriceCents     int64    `json:"basePriceCents"`
	OriginalPriceCents *int64   `json:"originalPriceCents,omitempty"`
	Features           []string `json:"features"`
	IsPackage          bool     `json:"isPackage"`
	BundledServiceIDs  []string `json:"bundledServiceIds,omitempty"`
}

type AddOnResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"priceCents"`
	Billing        string `json:"billing"`
	DurationMonths int    `json:"durationMonths,omitempty"`
}

type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	AddOns   []AddOnResponse   `json:"addOns"`
}

func FromCatalogView(view *queries.CatalogView) *CatalogResponse {
	var resp CatalogResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type PromotionResponse struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	Kind          string  `json:"kind"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	QuantityLimit int     `json:"quantityLimit"`
	QuantityUsed  int     `json:"quantityUsed"`
	Remaining     int     `json:"remaining"`
	Active        bool    `json:"active"`
}

func FromPromotionViews(views map[string]*queries.PromotionView) map[string]*PromotionResponse {
	resp := make(map[string]*PromotionResponse, len(views))
	for serviceID, view := range views {
		var p PromotionResponse
		_ = copier.Copy(&p, view)
		resp[serviceID] = &p
	}
	return resp
}
