package models

// Flow kinds. STORE enters from a fixed store and skips the store-selection
// step; SERVICE starts from the generic catalog and includes it.
const (
	FlowStore   = "STORE"
	FlowService = "SERVICE"
)

// OrderSession wraps one OrderDraft with flow metadata and the resolved
// price catalog. Version increases monotonically on every mutation and is
// used to discard stale asynchronous responses.
type OrderSession struct {
	SessionID       string         `json:"sessionId"`
	UserID          string         `json:"userId"`
	FlowKind        string         `json:"flowKind"`
	CurrentStep     int            `json:"currentStep"`
	TotalSteps      int            `json:"totalSteps"`
	Active          bool           `json:"active"`
	Version         int64          `json:"version"`
	Draft           OrderDraft     `json:"draft"`
	Catalog         *PriceCatalog  `json:"catalog,omitempty"`
	Dropdowns       []DropdownItem `json:"dropdowns,omitempty"`
	AvailableAddOns []AddOn        `json:"availableAddOns,omitempty"`
}
