package order

import (
	"strings"

	"washly/models"
)

// Default pickup window used when a time-slot string is missing or does not
// split into a start and end on its dash.
const (
	defaultSlotStart = "10:00 AM"
	defaultSlotEnd   = "08:00 PM"
)

const (
	payloadStatusPending = "Pending"
	pickupTypeHome       = "home_pickup"
)

// normalizeTimeSlot splits an "HH:MM AM/PM-HH:MM AM/PM" window on its dash
// and rejoins the trimmed halves. Malformed or missing slots fall back to
// the default window rather than failing assembly.
func normalizeTimeSlot(slot string) string {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return defaultSlotStart + "-" + defaultSlotEnd
	}
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return defaultSlotStart + "-" + defaultSlotEnd
	}
	return start + "-" + end
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// finalPayable derives the payable total from the breakdown components so
// the assembled amount always reflects the freshest figures, never a value
// captured earlier in the session.
func finalPayable(b models.PaymentBreakdown) float64 {
	return b.OrderAmount + b.Tax + b.PlatformFee + b.DeliveryCharge - b.Discount
}

func payloadItem(item models.OrderItem) models.PayloadItem {
	out := models.PayloadItem{
		ItemType: item.ItemType,
		Quantity: item.Quantity,
		Price:    priceOrZero(item.Price),
		Category: item.Category,
	}
	switch item.ItemType {
	case models.ServiceWashNFold:
		// Wash-and-fold lines are identified by type and weight alone.
	case models.ServiceDryCleaning:
		out.ItemName = item.ItemName
	case models.ServiceTailoring:
		out.ItemName = item.ItemName
		out.TailoringTypes = make([]models.PayloadTailoring, 0, len(item.TailoringSelections))
		for _, ts := range item.TailoringSelections {
			out.TailoringTypes = append(out.TailoringTypes, models.PayloadTailoring{
				Name:  ts.Name,
				Price: priceOrZero(ts.Price),
			})
		}
	}
	return out
}

// AssemblePayload turns a fully populated draft into the order-creation
// request. It is pure and idempotent: an unchanged draft assembles to a
// structurally identical payload every time. Pickup, items and store must
// all be present or an IncompleteDraftError is returned.
func AssemblePayload(draft models.OrderDraft, userID, campaignID, pricingTierID string) (*models.OrderCreationPayload, error) {
	var missing []string
	if draft.Pickup == nil {
		missing = append(missing, "pickup")
	}
	if len(draft.Items) == 0 {
		missing = append(missing, "items")
	}
	if draft.Store == nil {
		missing = append(missing, "store")
	}
	if len(missing) > 0 {
		return nil, &IncompleteDraftError{Missing: missing}
	}

	items := make([]models.PayloadItem, 0, len(draft.Items))
	totalQty := 0.0
	for _, item := range draft.Items {
		items = append(items, payloadItem(item))
		totalQty += item.Quantity
	}

	addOnItems := make([]models.PayloadItem, 0, len(draft.AddOns))
	for _, sel := range draft.AddOns {
		addOnItems = append(addOnItems, models.PayloadItem{
			ItemType: "ADD_ON",
			ItemName: sel.AddOn.Name,
			Quantity: float64(sel.Quantity),
			Price:    sel.AddOn.UnitPrice,
		})
	}

	breakdown := draft.PaymentBreakdown
	payload := &models.OrderCreationPayload{
		UserID:          userID,
		StoreID:         draft.Store.StoreID,
		CampaignID:      campaignID,
		PricingTierID:   pricingTierID,
		RepeatFrequency: draft.Pickup.RepeatOption,
		TotalAmount:     finalPayable(breakdown),
		Status:          payloadStatusPending,
		Pickup: models.PayloadPickup{
			PickupStatus:     payloadStatusPending,
			PickupDate:       draft.Pickup.CollectionDate,
			PickupTimeSlot:   normalizeTimeSlot(draft.Pickup.CollectionTime),
			PickupAddress:    draft.Pickup.PickupAddress,
			PickupType:       pickupTypeHome,
			DeliveryDate:     draft.Pickup.DeliveryDate,
			DeliveryTimeSlot: normalizeTimeSlot(draft.Pickup.DeliveryTime),
			// Orders are returned through the store, so the wire payload
			// carries the store address even when the user captured a
			// delivery address in pickup details.
			DeliveryAddress: draft.Store.StoreAddress,
		},
		Description: draft.Pickup.Note,
		Services: []models.PayloadService{{
			ServiceType:          draft.ServiceType,
			EstimatedWeightOrQty: totalQty,
			Notes:                draft.Pickup.Note,
			Items:                items,
		}},
		AdditionalItems: addOnItems,
		PaymentBreakdown: models.PayloadBreakdown{
			OrderAmount:    breakdown.OrderAmount,
			Discount:       breakdown.Discount,
			Tax:            breakdown.Tax,
			PlatformFee:    breakdown.PlatformFee,
			DeliveryCharge: breakdown.DeliveryCharge,
		},
	}
	return payload, nil
}
