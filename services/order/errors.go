package order

import (
	"fmt"
	"strings"
)

// SessionError covers session lookup and lifecycle failures.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSessionNotFound is returned when a session ID resolves to nothing,
// typically because it expired or was reset.
var ErrSessionNotFound = &SessionError{
	Code:    "sessionNotFound",
	Message: "order session not found or expired",
}

// IncompleteDraftError is returned when payload assembly is attempted before
// pickup, items and store are all set. Fatal to the assembly call only; the
// session survives so the user can go back and complete the draft.
type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return fmt.Sprintf("incompleteDraft: missing %s", strings.Join(e.Missing, ", "))
}

// RemotePricingFailure signals that the pricing service was unreachable or
// erred and the deterministic local fallback was applied instead. The
// breakdown carried on the session is provisional.
type RemotePricingFailure struct {
	Err error
}

func (e *RemotePricingFailure) Error() string {
	return fmt.Sprintf("remotePricingFailure: %v", e.Err)
}

func (e *RemotePricingFailure) Unwrap() error { return e.Err }

// OrderSubmissionFailure signals that the order-creation call failed or
// returned no checkout URL. The draft is preserved for retry.
type OrderSubmissionFailure struct {
	Err error
}

func (e *OrderSubmissionFailure) Error() string {
	return fmt.Sprintf("orderSubmissionFailure: %v", e.Err)
}

func (e *OrderSubmissionFailure) Unwrap() error { return e.Err }
