package gateway

import (
	"context"

	"washly/models"
)

// StoreCatalog bundles everything a store exposes for one service type.
type StoreCatalog struct {
	Offerings []models.ServiceOffering `json:"offerings"`
	AddOns    []models.AddOn           `json:"addOns"`
}

// CatalogGateway supplies store catalogs, generic dropdown lists and coupon
// candidates. Consumed, never implemented, by the order core.
type CatalogGateway interface {
	FetchStoreCatalog(ctx context.Context, storeID, serviceType string) (*StoreCatalog, error)
	FetchDropdowns(ctx context.Context, serviceType string) ([]models.DropdownItem, error)
	FetchCouponCandidates(ctx context.Context) ([]models.CouponCandidate, error)
}

// BreakdownRequest is the pricing-service request body.
type BreakdownRequest struct {
	OrderAmount  float64 `json:"orderAmount"`
	CampaignCode string  `json:"campaignCode,omitempty"`
}

// BreakdownResponse is the authoritative fee/discount decomposition.
type BreakdownResponse struct {
	OrderAmount         float64 `json:"orderAmount"`
	CampaignCode        string  `json:"campaignCode"`
	Discount            float64 `json:"discount"`
	AmountAfterDiscount float64 `json:"amountAfterDiscount"`
	Tax                 float64 `json:"tax"`
	PlatformFee         float64 `json:"platformFee"`
	DeliveryCharge      float64 `json:"deliveryCharge"`
	FinalPayable        float64 `json:"finalPayable"`
}

// PricingGateway resolves a subtotal into a server-computed breakdown.
type PricingGateway interface {
	GetBreakdown(ctx context.Context, req BreakdownRequest) (*BreakdownResponse, error)
}

// OrderGateway submits the assembled payload. A response without a
// checkout URL counts as a failed submission.
type OrderGateway interface {
	CreateOrder(ctx context.Context, payload models.OrderCreationPayload) (string, error)
}
