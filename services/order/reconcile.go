package order

import (
	"context"
	"math"

	"washly/models"
	"washly/services/gateway"

	"go.uber.org/zap"
)

// Fallback figures used when the pricing service is unreachable. These are
// documented approximations, not guesses: tests assert the exact numbers.
const (
	fallbackTaxRate        = 0.21
	fallbackDeliveryCharge = 5.0
)

// FallbackBreakdown is the deterministic local estimate applied when the
// remote pricing call fails. The result is flagged provisional.
func FallbackBreakdown(subtotal float64) models.PaymentBreakdown {
	tax := math.Round(subtotal * fallbackTaxRate)
	return models.PaymentBreakdown{
		OrderAmount:    subtotal,
		Discount:       0,
		Tax:            tax,
		PlatformFee:    0,
		DeliveryCharge: fallbackDeliveryCharge,
		FinalPayable:   subtotal + tax + fallbackDeliveryCharge,
		Provisional:    true,
	}
}

func breakdownFromResponse(resp *gateway.BreakdownResponse) models.PaymentBreakdown {
	return models.PaymentBreakdown{
		OrderAmount:    resp.OrderAmount,
		Discount:       resp.Discount,
		Tax:            resp.Tax,
		PlatformFee:    resp.PlatformFee,
		DeliveryCharge: resp.DeliveryCharge,
		FinalPayable:   resp.FinalPayable,
	}
}

// ReconcileBreakdown sends the current subtotal and coupon code to the
// pricing service and applies the returned breakdown to the session. A
// server breakdown fully replaces local estimates. If the session mutated
// while the call was in flight the response is discarded (last-input-wins)
// and the freshest session is returned untouched. On remote failure the
// deterministic fallback is applied and a RemotePricingFailure is returned
// alongside the updated session so the caller can flag the estimate.
func (s *DefaultOrderSessionService) ReconcileBreakdown(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	startVersion := sess.Version
	subtotal := sess.Draft.PaymentBreakdown.OrderAmount
	req := gateway.BreakdownRequest{OrderAmount: subtotal}
	if sess.Draft.Coupon != nil {
		req.CampaignCode = sess.Draft.Coupon.Code
	}

	resp, callErr := s.Pricing.GetBreakdown(ctx, req)

	// Re-read before applying: the draft may have moved while the request
	// was in flight, in which case this response is stale and must be
	// dropped rather than applied.
	fresh, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if fresh.Version != startVersion {
		s.logger().Debug("discarding stale breakdown response",
			zap.String("sessionID", sessionID),
			zap.Int64("requestVersion", startVersion),
			zap.Int64("currentVersion", fresh.Version))
		return fresh, nil
	}

	if callErr != nil {
		fresh.Draft.PaymentBreakdown = FallbackBreakdown(subtotal)
		fresh.Version++
		if err := s.Sessions.Save(ctx, fresh); err != nil {
			return nil, err
		}
		s.logger().Warn("pricing service failed, applied local fallback",
			zap.String("sessionID", sessionID), zap.Error(callErr))
		return fresh, &RemotePricingFailure{Err: callErr}
	}

	breakdown := breakdownFromResponse(resp)
	breakdown.OrderAmount = subtotal
	fresh.Draft.PaymentBreakdown = breakdown
	fresh.Version++
	if err := s.Sessions.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
