package order

import (
	"sort"

	"washly/models"
)

// The reducers below are pure: each takes the draft by value, applies one
// mutation kind and returns the updated draft with the order amount already
// recomputed. Nothing here touches the network or the session store.

// DryCleaningChoice is the per-cloth input for a dry-cleaning selection.
type DryCleaningChoice struct {
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// TailoringChoice is the per-cloth input for a tailoring selection.
type TailoringChoice struct {
	Category      string `json:"category"`
	TailoringType string `json:"tailoringType"`
}

// ItemSelection is the raw user selection; exactly one field is consulted,
// chosen by the draft's service type.
type ItemSelection struct {
	WashFold    map[string]float64           `json:"washFold,omitempty"`
	DryCleaning map[string]DryCleaningChoice `json:"dryCleaning,omitempty"`
	Tailoring   map[string]TailoringChoice   `json:"tailoring,omitempty"`
}

// SetPickup stores pickup details, defaulting delivery date/time to the
// collection values and the repeat option to no-repeat.
func SetPickup(draft models.OrderDraft, in models.PickupDetails) models.OrderDraft {
	if in.DeliveryDate == "" {
		in.DeliveryDate = in.CollectionDate
	}
	if in.DeliveryTime == "" {
		in.DeliveryTime = in.CollectionTime
	}
	if in.RepeatOption == "" {
		in.RepeatOption = models.RepeatNone
	}
	draft.Pickup = &in
	return draft
}

// SetStore records the chosen store. Price resolution is a separate effect
// triggered by the store change, not performed here.
func SetStore(draft models.OrderDraft, store models.Store) models.OrderDraft {
	draft.Store = &store
	return draft
}

// SetItems replaces the item list from the raw selection. Zero-quantity
// entries are pruned rather than stored, prices are attached from the
// resolved catalog where available, and the order amount is recomputed
// before returning.
func SetItems(draft models.OrderDraft, sel ItemSelection, catalog *models.PriceCatalog) models.OrderDraft {
	switch draft.ServiceType {
	case models.ServiceWashNFold:
		draft.Items = washFoldItems(sel.WashFold, catalog)
	case models.ServiceDryCleaning:
		draft.Items = dryCleaningItems(sel.DryCleaning, catalog)
	case models.ServiceTailoring:
		draft.Items = tailoringItems(sel.Tailoring, catalog)
	}
	return recomputeOrderAmount(draft)
}

// SetAddOns replaces the add-on list wholesale, clamping quantities to stock
// and pruning selections that bottom out at zero.
func SetAddOns(draft models.OrderDraft, selections []models.AddOnSelection) models.OrderDraft {
	kept := make([]models.AddOnSelection, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity > sel.AddOn.StockQuantity {
			sel.Quantity = sel.AddOn.StockQuantity
		}
		if sel.Quantity <= 0 {
			continue
		}
		kept = append(kept, sel)
	}
	draft.AddOns = kept
	return recomputeOrderAmount(draft)
}

// ApplyCatalog re-resolves the draft against a newly available catalog and
// add-on inventory. Items whose name no longer exists are dropped, prices
// are refreshed, add-ons missing from the new inventory are dropped and
// surviving quantities are clamped to the new stock ceiling.
func ApplyCatalog(draft models.OrderDraft, catalog *models.PriceCatalog, addOns []models.AddOn) models.OrderDraft {
	if catalog != nil {
		kept := make([]models.OrderItem, 0, len(draft.Items))
		for _, item := range draft.Items {
			price, known := catalog.ItemPrice[item.ItemName]
			if !known {
				continue
			}
			p := price
			item.Price = &p
			for i, ts := range item.TailoringSelections {
				item.TailoringSelections[i].Price = lookupTailoringPrice(catalog, item.ItemName, ts.Name)
			}
			kept = append(kept, item)
		}
		draft.Items = kept
	}

	if addOns != nil {
		stock := make(map[string]models.AddOn, len(addOns))
		for _, a := range addOns {
			stock[a.ID] = a
		}
		kept := make([]models.AddOnSelection, 0, len(draft.AddOns))
		for _, sel := range draft.AddOns {
			current, ok := stock[sel.AddOn.ID]
			if !ok {
				continue
			}
			sel.AddOn = current
			if sel.Quantity > current.StockQuantity {
				sel.Quantity = current.StockQuantity
			}
			if sel.Quantity <= 0 {
				continue
			}
			kept = append(kept, sel)
		}
		draft.AddOns = kept
	}

	return recomputeOrderAmount(draft)
}

// recomputeOrderAmount restores the invariant that the order amount equals
// the sum of item, tailoring and add-on line totals. Unresolved prices
// contribute nothing.
func recomputeOrderAmount(draft models.OrderDraft) models.OrderDraft {
	total := 0.0
	for _, item := range draft.Items {
		if item.Price != nil {
			total += *item.Price * item.Quantity
		}
		for _, ts := range item.TailoringSelections {
			if ts.Price != nil {
				total += *ts.Price
			}
		}
	}
	for _, sel := range draft.AddOns {
		total += sel.AddOn.UnitPrice * float64(sel.Quantity)
	}
	draft.PaymentBreakdown.OrderAmount = total
	return draft
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func washFoldItems(weights map[string]float64, catalog *models.PriceCatalog) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(weights))
	for _, name := range sortedKeys(weights) {
		weight := weights[name]
		if weight <= 0 {
			continue
		}
		items = append(items, models.OrderItem{
			ItemName: name,
			ItemType: models.ServiceWashNFold,
			Quantity: weight,
			Price:    lookupItemPrice(catalog, name),
		})
	}
	return items
}

func dryCleaningItems(choices map[string]DryCleaningChoice, catalog *models.PriceCatalog) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(choices))
	for _, name := range sortedKeys(choices) {
		choice := choices[name]
		if choice.Quantity <= 0 {
			continue
		}
		items = append(items, models.OrderItem{
			ItemName: name,
			ItemType: models.ServiceDryCleaning,
			Quantity: float64(choice.Quantity),
			Category: choice.Category,
			Price:    lookupItemPrice(catalog, name),
		})
	}
	return items
}

func tailoringItems(choices map[string]TailoringChoice, catalog *models.PriceCatalog) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(choices))
	for _, name := range sortedKeys(choices) {
		choice := choices[name]
		if choice.TailoringType == "" {
			continue
		}
		items = append(items, models.OrderItem{
			ItemName: name,
			ItemType: models.ServiceTailoring,
			Quantity: 1,
			Category: choice.Category,
			Price:    lookupItemPrice(catalog, name),
			TailoringSelections: []models.TailoringSelection{{
				Name:  choice.TailoringType,
				Price: lookupTailoringPrice(catalog, name, choice.TailoringType),
			}},
		})
	}
	return items
}

// PendingPrices lists item names still waiting for price resolution. The
// caller surfaces these as "TBD"; they never block navigation.
func PendingPrices(draft models.OrderDraft) []string {
	var pending []string
	for _, item := range draft.Items {
		if item.Price == nil {
			pending = append(pending, item.ItemName)
			continue
		}
		for _, ts := range item.TailoringSelections {
			if ts.Price == nil {
				pending = append(pending, item.ItemName)
				break
			}
		}
	}
	return pending
}
