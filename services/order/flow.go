package order

import "washly/models"

// Step numbering is shared by both flows; the STORE flow simply never
// visits StepStoreSelect because its store is fixed by the entry point.
const (
	StepPickup      = 1
	StepClothes     = 2
	StepStoreSelect = 3
	StepConfirm     = 4
)

// TotalStepsFor returns the number of counted steps for a flow kind:
// pickup/clothes/confirm for STORE, plus store selection for SERVICE.
func TotalStepsFor(flowKind string) int {
	if flowKind == models.FlowStore {
		return 3
	}
	return 4
}

// NextStep advances the session one legal step forward. In the STORE flow
// the store-selection step is unreachable, so clothes jumps straight to
// confirm. At the last step this is a no-op.
func NextStep(sess models.OrderSession) models.OrderSession {
	if sess.CurrentStep >= StepConfirm {
		return sess
	}
	if sess.FlowKind == models.FlowStore && sess.CurrentStep == StepClothes {
		sess.CurrentStep = StepConfirm
		return sess
	}
	sess.CurrentStep++
	return sess
}

// PrevStep moves the session one legal step backward, with the symmetric
// STORE-flow skip. Below step one this is a no-op. Leaving the confirm
// step discards any assembled payload; it must be rebuilt from the fresh
// draft on the way back in.
func PrevStep(sess models.OrderSession) models.OrderSession {
	if sess.CurrentStep <= StepPickup {
		return sess
	}
	leavingConfirm := sess.CurrentStep == StepConfirm
	if sess.FlowKind == models.FlowStore && leavingConfirm {
		sess.CurrentStep = StepClothes
	} else {
		sess.CurrentStep--
	}
	if leavingConfirm {
		sess.Draft.FinalPayload = nil
	}
	return sess
}
