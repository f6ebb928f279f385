package request

type CheckoutRequest struct {
	ServiceID string   `json:"serviceId" binding:"required"`
	AddOnIDs  []string `json:"addOnIds" binding:"omitempty,dive,required"`
}

type QuoteRequest struct {
	ServiceID string   `json:"serviceId" binding:"required"`
	AddOnIDs  []string `json:"addOnIds" binding:"omitempty,dive,required"`
}
