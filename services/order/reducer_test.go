package order_test

import (
	"testing"

	"washly/models"
	"washly/services/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func washFoldPriceCatalog() *models.PriceCatalog {
	return &models.PriceCatalog{
		ItemPrice: map[string]float64{
			"Mix Cloth": 4,
			"Whites":    5,
		},
		TailoringPrice: map[string]float64{},
	}
}

func TestSetPickupDefaults(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceWashNFold}
	draft = order.SetPickup(draft, models.PickupDetails{
		PickupAddress:  "12 Main St",
		CollectionDate: "2026-09-01",
		CollectionTime: "10:00 AM-12:00 PM",
	})

	require.NotNil(t, draft.Pickup)
	assert.Equal(t, "2026-09-01", draft.Pickup.DeliveryDate)
	assert.Equal(t, "10:00 AM-12:00 PM", draft.Pickup.DeliveryTime)
	assert.Equal(t, models.RepeatNone, draft.Pickup.RepeatOption)
	assert.Equal(t, "", draft.Pickup.Note)
}

func TestSetItemsRecomputesOrderAmount(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceWashNFold}
	draft = order.SetItems(draft, order.ItemSelection{
		WashFold: map[string]float64{"Mix Cloth": 2.5, "Whites": 1},
	}, washFoldPriceCatalog())

	require.Len(t, draft.Items, 2)
	assert.Equal(t, 2.5*4+1*5, draft.PaymentBreakdown.OrderAmount)
}

func TestSetItemsPrunesZeroQuantities(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceWashNFold}
	draft = order.SetItems(draft, order.ItemSelection{
		WashFold: map[string]float64{"Mix Cloth": 2.5, "Whites": 0},
	}, washFoldPriceCatalog())

	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Mix Cloth", draft.Items[0].ItemName)
}

func TestSetItemsDryCleaningCarriesCategory(t *testing.T) {
	catalog := &models.PriceCatalog{
		ItemPrice:      map[string]float64{"Suit": 12},
		TailoringPrice: map[string]float64{},
	}
	draft := models.OrderDraft{ServiceType: models.ServiceDryCleaning}
	draft = order.SetItems(draft, order.ItemSelection{
		DryCleaning: map[string]order.DryCleaningChoice{
			"Suit":  {Quantity: 2, Category: "Formal"},
			"Dress": {Quantity: 0, Category: "Formal"},
		},
	}, catalog)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Formal", draft.Items[0].Category)
	assert.Equal(t, 24.0, draft.PaymentBreakdown.OrderAmount)
}

func TestSetItemsTailoringRequiresType(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceTailoring}
	draft = order.SetItems(draft, order.ItemSelection{
		Tailoring: map[string]order.TailoringChoice{
			"Shirt":    {Category: "Tops", TailoringType: ""},
			"Trousers": {Category: "Bottoms", TailoringType: "Hemming"},
		},
	}, nil)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Trousers", draft.Items[0].ItemName)
}

func TestSetItemsWithoutCatalogLeavesPricePending(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceWashNFold}
	draft = order.SetItems(draft, order.ItemSelection{
		WashFold: map[string]float64{"Mix Cloth": 2.5},
	}, nil)

	require.Len(t, draft.Items, 1)
	assert.Nil(t, draft.Items[0].Price)
	assert.Equal(t, 0.0, draft.PaymentBreakdown.OrderAmount)
	assert.Equal(t, []string{"Mix Cloth"}, order.PendingPrices(draft))
}

func TestSetAddOnsClampsAndRecomputes(t *testing.T) {
	draft := models.OrderDraft{ServiceType: models.ServiceWashNFold}
	draft = order.SetAddOns(draft, []models.AddOnSelection{
		{AddOn: models.AddOn{ID: "a", Name: "Softener", UnitPrice: 2, StockQuantity: 3}, Quantity: 5},
		{AddOn: models.AddOn{ID: "b", Name: "Bag", UnitPrice: 1, StockQuantity: 10}, Quantity: 0},
	})

	require.Len(t, draft.AddOns, 1)
	assert.Equal(t, 3, draft.AddOns[0].Quantity)
	assert.Equal(t, 6.0, draft.PaymentBreakdown.OrderAmount)
}

func TestApplyCatalogDropsUnknownItemsAndReprices(t *testing.T) {
	oldPrice := 9.0
	draft := models.OrderDraft{
		ServiceType: models.ServiceWashNFold,
		Items: []models.OrderItem{
			{ItemName: "Mix Cloth", ItemType: models.ServiceWashNFold, Quantity: 2, Price: &oldPrice},
			{ItemName: "Silk", ItemType: models.ServiceWashNFold, Quantity: 1, Price: &oldPrice},
		},
	}

	draft = order.ApplyCatalog(draft, washFoldPriceCatalog(), nil)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Mix Cloth", draft.Items[0].ItemName)
	require.NotNil(t, draft.Items[0].Price)
	assert.Equal(t, 4.0, *draft.Items[0].Price)
	assert.Equal(t, 8.0, draft.PaymentBreakdown.OrderAmount)
}

func TestApplyCatalogClampsStaleAddOnQuantities(t *testing.T) {
	draft := models.OrderDraft{
		ServiceType: models.ServiceWashNFold,
		AddOns: []models.AddOnSelection{
			{AddOn: models.AddOn{ID: "a", Name: "Softener", UnitPrice: 2, StockQuantity: 10}, Quantity: 5},
			{AddOn: models.AddOn{ID: "gone", Name: "Starch", UnitPrice: 3, StockQuantity: 10}, Quantity: 2},
		},
	}

	newStock := []models.AddOn{
		{ID: "a", Name: "Softener", UnitPrice: 2, StockQuantity: 3},
	}
	draft = order.ApplyCatalog(draft, nil, newStock)

	require.Len(t, draft.AddOns, 1, "add-on missing from the new catalog is removed")
	assert.Equal(t, 3, draft.AddOns[0].Quantity, "stale quantity clamps to the new stock ceiling")
	assert.Equal(t, 6.0, draft.PaymentBreakdown.OrderAmount)
}
