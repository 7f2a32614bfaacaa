package order

import (
	"context"
	"fmt"

	"washly/models"
)

// ListCoupons proxies the gateway's current coupon candidates.
func (s *DefaultOrderSessionService) ListCoupons(ctx context.Context) ([]models.CouponCandidate, error) {
	return s.Catalog.FetchCouponCandidates(ctx)
}

// ApplyCoupon attaches a coupon to the draft and reconciles the breakdown
// with the pricing service. A code matching a server-supplied candidate is
// applied as a catalog coupon and takes priority over a manually typed code
// with the same value; a code matching no candidate is still forwarded as a
// manual coupon attempt, never rejected client-side.
func (s *DefaultOrderSessionService) ApplyCoupon(ctx context.Context, sessionID, code string) (*models.OrderSession, error) {
	if code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}

	candidates, err := s.Catalog.FetchCouponCandidates(ctx)
	if err != nil {
		// Candidate fetch failing must not block a manual attempt; the
		// pricing service is the authority on validity anyway.
		candidates = nil
	}

	coupon := models.Coupon{Code: code, Source: models.CouponSourceManual}
	for _, cand := range candidates {
		if cand.Code == code {
			coupon = models.Coupon{
				ID:           cand.ID,
				Code:         cand.Code,
				Description:  cand.Description,
				Discount:     cand.Discount,
				DiscountType: cand.DiscountType,
				Source:       models.CouponSourceCatalog,
			}
			break
		}
	}

	if _, err := s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		sess.Draft.Coupon = &coupon
		return nil
	}); err != nil {
		return nil, err
	}

	return s.ReconcileBreakdown(ctx, sessionID)
}
