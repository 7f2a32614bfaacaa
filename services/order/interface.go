package order

import (
	"context"

	recordsRepo "washly/database/repository/records"
	"washly/models"
	"washly/services/gateway"
	"washly/utils"

	"go.uber.org/zap"
)

// SubmissionResult is returned after a successful order handoff.
type SubmissionResult struct {
	CheckoutURL string                      `json:"checkoutUrl"`
	RecordID    string                      `json:"recordId"`
	Payload     models.OrderCreationPayload `json:"payload"`
}

// OrderSessionService is the stateful order-building engine: one session
// per in-progress draft, mutated step by step until submission or reset.
type OrderSessionService interface {
	StartOrder(ctx context.Context, userID, serviceType string) (*models.OrderSession, error)
	StartOrderFromStore(ctx context.Context, userID, serviceType string, store models.Store) (*models.OrderSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.OrderSession, error)

	SetPickup(ctx context.Context, sessionID string, details models.PickupDetails) (*models.OrderSession, error)
	SetItems(ctx context.Context, sessionID string, sel ItemSelection) (*models.OrderSession, error)
	SetStore(ctx context.Context, sessionID string, store models.Store) (*models.OrderSession, error)
	SetAddOns(ctx context.Context, sessionID string, selections []models.AddOnSelection) (*models.OrderSession, error)

	NextStep(ctx context.Context, sessionID string) (*models.OrderSession, error)
	PrevStep(ctx context.Context, sessionID string) (*models.OrderSession, error)

	ListCoupons(ctx context.Context) ([]models.CouponCandidate, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*models.OrderSession, error)
	ReconcileBreakdown(ctx context.Context, sessionID string) (*models.OrderSession, error)

	SubmitOrder(ctx context.Context, sessionID, campaignID, pricingTierID string) (*SubmissionResult, error)
	ResetOrder(ctx context.Context, sessionID string) error
}

// DefaultOrderSessionService implements OrderSessionService.
type DefaultOrderSessionService struct {
	Catalog  gateway.CatalogGateway
	Pricing  gateway.PricingGateway
	Orders   gateway.OrderGateway
	Records  recordsRepo.OrderRecordRepository
	Sessions SessionStore
	Logger   *zap.Logger
}

func (s *DefaultOrderSessionService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
