package models

// Service types a draft can carry. Fixed for the lifetime of one draft.
const (
	ServiceWashNFold   = "WASH_N_FOLD"
	ServiceDryCleaning = "DRYCLEANING"
	ServiceTailoring   = "TAILORING"
)

// RepeatNone is the default repeat option for a one-off pickup.
const RepeatNone = "no-repeat"

// PickupDetails captures collection and delivery scheduling for a draft.
// DeliveryDate/DeliveryTime default to the collection values when omitted.
type PickupDetails struct {
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	CollectionDate  string `json:"collectionDate"`
	CollectionTime  string `json:"collectionTime"`
	DeliveryDate    string `json:"deliveryDate"`
	DeliveryTime    string `json:"deliveryTime"`
	Note            string `json:"note"`
	RepeatOption    string `json:"repeatOption"`
}

// TailoringSelection is one tailoring treatment chosen for an item.
// Price is nil until the composite key resolves against a store catalog.
type TailoringSelection struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

// OrderItem is a tagged union discriminated by ItemType.
// Quantity is weight in kg (0.5 increments) for wash-and-fold, a unit count otherwise.
// Price is nil while unresolved ("TBD"); that is not an error state.
type OrderItem struct {
	ItemName            string               `json:"itemName"`
	ItemType            string               `json:"itemType"`
	Quantity            float64              `json:"quantity"`
	Price               *float64             `json:"price,omitempty"`
	Category            string               `json:"category,omitempty"`
	TailoringSelections []TailoringSelection `json:"tailoringSelections,omitempty"`
}

// Store identifies the laundry store servicing the order.
type Store struct {
	StoreID      string `json:"storeId"`
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
}

// AddOn is an inventory-backed extra offered by a store.
type AddOn struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unitPrice"`
	StockQuantity int     `json:"stockQuantity"`
}

// AddOnSelection pairs an add-on with the chosen quantity, bounded by stock.
type AddOnSelection struct {
	AddOn    AddOn `json:"addOn"`
	Quantity int   `json:"quantity"`
}

// Coupon sources. Catalog coupons come from the server-supplied candidate
// list; manual ones are typed codes forwarded to the pricing service as-is.
const (
	CouponSourceCatalog = "CATALOG"
	CouponSourceManual  = "MANUAL"
)

// Coupon is the coupon currently applied to a draft.
type Coupon struct {
	ID           string  `json:"id,omitempty"`
	Code         string  `json:"code"`
	Description  string  `json:"description,omitempty"`
	Discount     float64 `json:"discount,omitempty"`
	DiscountType string  `json:"discountType,omitempty"`
	Source       string  `json:"source"`
}

// PaymentBreakdown decomposes the order total. OrderAmount is derived locally;
// the fee and discount fields are authoritative only once returned by the
// pricing service. Provisional marks a local fallback estimate.
type PaymentBreakdown struct {
	OrderAmount    float64 `json:"orderAmount"`
	Discount       float64 `json:"discount"`
	Tax            float64 `json:"tax"`
	PlatformFee    float64 `json:"platformFee"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	FinalPayable   float64 `json:"finalPayable"`
	Provisional    bool    `json:"provisional,omitempty"`
}

// OrderDraft is the mutable order being built across steps.
type OrderDraft struct {
	ServiceType      string                `json:"serviceType"`
	Pickup           *PickupDetails        `json:"pickup,omitempty"`
	Items            []OrderItem           `json:"items"`
	Store            *Store                `json:"store,omitempty"`
	AddOns           []AddOnSelection      `json:"addOns"`
	Coupon           *Coupon               `json:"coupon,omitempty"`
	PaymentBreakdown PaymentBreakdown      `json:"paymentBreakdown"`
	FinalPayload     *OrderCreationPayload `json:"finalPayload,omitempty"`
}
