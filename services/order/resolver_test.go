package order_test

import (
	"testing"

	"washly/models"
	"washly/services/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCatalogSkipsDeletedRows(t *testing.T) {
	deleted := "2026-01-15T00:00:00Z"
	catalog := order.ResolveCatalog([]models.ServiceOffering{{
		ServiceType: models.ServiceDryCleaning,
		UnitDetails: []models.CatalogLineItem{
			{ClothName: "Suit", Price: 12, DeletedAt: &deleted},
			{ClothName: "Suit", Price: 9},
			{ClothName: "Coat", Price: 15},
		},
	}})

	assert.Equal(t, 9.0, catalog.ItemPrice["Suit"], "first non-deleted row should win")
	assert.Equal(t, 15.0, catalog.ItemPrice["Coat"])
}

func TestResolveCatalogFirstRowWinsForDuplicates(t *testing.T) {
	catalog := order.ResolveCatalog([]models.ServiceOffering{{
		ServiceType: models.ServiceDryCleaning,
		UnitDetails: []models.CatalogLineItem{
			{ClothName: "Shirt", Price: 3},
			{ClothName: "Shirt", Price: 7},
		},
	}})

	assert.Equal(t, 3.0, catalog.ItemPrice["Shirt"])
}

func TestResolveCatalogCompositeTailoringKey(t *testing.T) {
	catalog := order.ResolveCatalog([]models.ServiceOffering{{
		ServiceType: models.ServiceTailoring,
		UnitDetails: []models.CatalogLineItem{
			{
				ClothName:     "Shirt",
				Category:      "Tops",
				Price:         2,
				TailoringType: &models.TailoringType{Name: "Alteration", Price: 6},
			},
		},
	}})

	require.Contains(t, catalog.TailoringPrice, "Shirt_Alteration")
	assert.Equal(t, 6.0, catalog.TailoringPrice["Shirt_Alteration"])
}

func TestTailoringPriceKeyFormat(t *testing.T) {
	assert.Equal(t, "Shirt_Alteration", order.TailoringPriceKey("Shirt", "Alteration"))
}

func TestReducerReadsCompositeTailoringKey(t *testing.T) {
	catalog := order.ResolveCatalog([]models.ServiceOffering{{
		ServiceType: models.ServiceTailoring,
		UnitDetails: []models.CatalogLineItem{
			{
				ClothName:     "Shirt",
				Category:      "Tops",
				Price:         2,
				TailoringType: &models.TailoringType{Name: "Alteration", Price: 6},
			},
		},
	}})

	draft := models.OrderDraft{ServiceType: models.ServiceTailoring}
	draft = order.SetItems(draft, order.ItemSelection{
		Tailoring: map[string]order.TailoringChoice{
			"Shirt": {Category: "Tops", TailoringType: "Alteration"},
		},
	}, catalog)

	require.Len(t, draft.Items, 1)
	item := draft.Items[0]
	assert.Equal(t, 1.0, item.Quantity)
	require.Len(t, item.TailoringSelections, 1)
	require.NotNil(t, item.TailoringSelections[0].Price)
	assert.Equal(t, 6.0, *item.TailoringSelections[0].Price)
	// item price by name plus the tailoring price under the composite key
	assert.Equal(t, 8.0, draft.PaymentBreakdown.OrderAmount)
}
