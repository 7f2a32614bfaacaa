package models

// Wire-format structs for the order-creation request. Field names are fixed
// for compatibility with the order service; do not rename.

// PayloadTailoring is one tailoring treatment in the wire payload.
type PayloadTailoring struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PayloadItem is one order line. Shape branches per service type:
// wash-and-fold omits item_name, tailoring adds tailoring_types.
type PayloadItem struct {
	ItemType       string             `json:"item_type"`
	ItemName       string             `json:"item_name,omitempty"`
	Quantity       float64            `json:"quantity"`
	Price          float64            `json:"price"`
	Category       string             `json:"category,omitempty"`
	TailoringTypes []PayloadTailoring `json:"tailoring_types,omitempty"`
}

// PayloadService groups the items of one service type.
type PayloadService struct {
	ServiceType          string        `json:"service_type"`
	EstimatedWeightOrQty float64       `json:"estimated_weight_or_qty"`
	Notes                string        `json:"notes"`
	Items                []PayloadItem `json:"items"`
}

// PayloadPickup carries the scheduling block of the order request.
type PayloadPickup struct {
	PickupStatus     string `json:"pickup_status"`
	PickupDate       string `json:"pickup_date"`
	PickupTimeSlot   string `json:"pickup_time_slot"`
	PickupAddress    string `json:"pickup_address"`
	PickupType       string `json:"pickup_type"`
	DeliveryDate     string `json:"delivery_date"`
	DeliveryTimeSlot string `json:"delivery_time_slot"`
	DeliveryAddress  string `json:"delivery_address"`
}

// PayloadBreakdown mirrors PaymentBreakdown on the wire.
type PayloadBreakdown struct {
	OrderAmount    float64 `json:"orderAmount"`
	Discount       float64 `json:"discount"`
	Tax            float64 `json:"tax"`
	PlatformFee    float64 `json:"platformFee"`
	DeliveryCharge float64 `json:"deliveryCharge"`
}

// OrderCreationPayload is the final order-creation request body.
type OrderCreationPayload struct {
	UserID           string           `json:"user_id"`
	StoreID          string           `json:"store_id"`
	CampaignID       string           `json:"campaign_id,omitempty"`
	PricingTierID    string           `json:"pricing_tier_id,omitempty"`
	RepeatFrequency  string           `json:"repeat_frequency"`
	TotalAmount      float64          `json:"total_amount"`
	Status           string           `json:"status"`
	Pickup           PayloadPickup    `json:"pickup"`
	Description      string           `json:"description"`
	Services         []PayloadService `json:"services"`
	AdditionalItems  []PayloadItem    `json:"additional_items"`
	PaymentBreakdown PayloadBreakdown `json:"payment_breakdown"`
}
