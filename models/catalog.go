package models

// TailoringType is the tailoring treatment attached to a catalog row.
type TailoringType struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CatalogLineItem is one raw pricing row from the store/catalog gateway.
type CatalogLineItem struct {
	ClothName     string         `json:"cloth_name"`
	Category      string         `json:"category"`
	Price         float64        `json:"price"`
	TailoringType *TailoringType `json:"tailoringType,omitempty"`
	DeletedAt     *string        `json:"deleted_at,omitempty"`
}

// ServiceOffering is one service-offering record from a store, optionally
// holding weight-based (pound) and unit-based line items.
type ServiceOffering struct {
	ServiceType  string            `json:"service_type"`
	PoundDetails []CatalogLineItem `json:"poundDetails"`
	UnitDetails  []CatalogLineItem `json:"unitDetails"`
}

// PriceCatalog is the resolved lookup view of a store's offerings.
// TailoringPrice is keyed by the composite "<itemName>_<tailoringType>" string.
type PriceCatalog struct {
	ItemPrice      map[string]float64 `json:"itemPrice"`
	TailoringPrice map[string]float64 `json:"tailoringPrice"`
}

// DropdownItem is a generic catalog entry used before a store is chosen.
// It carries no price; items built from it stay unpriced until resolution.
type DropdownItem struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// CouponCandidate is a coupon offered by the gateway for selection.
type CouponCandidate struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Description  string   `json:"description"`
	Discount     float64  `json:"discount"`
	DiscountType string   `json:"discountType"`
	MinAmount    *float64 `json:"minAmount,omitempty"`
	MaxDiscount  *float64 `json:"maxDiscount,omitempty"`
}
