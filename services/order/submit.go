package order

import (
	"context"
	"fmt"

	"washly/models"

	"go.uber.org/zap"
)

// SubmitOrder assembles the final payload from the current draft, hands it
// to the order service and records the result. On submission failure the
// session is preserved untouched so the user can retry without re-entering
// anything; only a successful handoff terminates the session.
func (s *DefaultOrderSessionService) SubmitOrder(ctx context.Context, sessionID, campaignID, pricingTierID string) (*SubmissionResult, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := AssemblePayload(sess.Draft, sess.UserID, campaignID, pricingTierID)
	if err != nil {
		return nil, err
	}

	// Keep the assembled payload on the draft while the submission is in
	// flight; it is cleared again if the user navigates back out of the
	// confirm step.
	if _, err := s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		sess.Draft.FinalPayload = payload
		return nil
	}); err != nil {
		return nil, err
	}

	checkoutURL, err := s.Orders.CreateOrder(ctx, *payload)
	if err != nil {
		s.logger().Warn("order submission failed, draft preserved",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, &OrderSubmissionFailure{Err: err}
	}

	record := models.OrderRecord{
		UserID:      sess.UserID,
		StoreID:     payload.StoreID,
		ServiceType: sess.Draft.ServiceType,
		TotalAmount: payload.TotalAmount,
		CheckoutURL: checkoutURL,
		Payload:     *payload,
	}
	recordID := ""
	if s.Records != nil {
		recordID, err = s.Records.Create(ctx, record)
		if err != nil {
			// The order is already placed; losing the local record must not
			// fail the submission.
			s.logger().Error("failed to persist order record",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	if err := s.completeOrder(ctx, sessionID); err != nil {
		return nil, err
	}

	s.logger().Info("order submitted",
		zap.String("sessionID", sessionID),
		zap.String("recordID", recordID),
		zap.Float64("totalAmount", payload.TotalAmount))

	return &SubmissionResult{
		CheckoutURL: checkoutURL,
		RecordID:    recordID,
		Payload:     *payload,
	}, nil
}

// completeOrder discards the draft after a successful handoff.
func (s *DefaultOrderSessionService) completeOrder(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear completed session: %w", err)
	}
	return nil
}
