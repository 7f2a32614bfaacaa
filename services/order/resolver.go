package order

import "washly/models"

// TailoringPriceKey builds the composite lookup key for a tailoring price.
// The "<itemName>_<tailoringType>" format is load-bearing: the reducer reads
// prices back under exactly this key.
func TailoringPriceKey(itemName, tailoringType string) string {
	return itemName + "_" + tailoringType
}

// ResolveCatalog maps a store's raw offering rows into the two lookup
// tables used for price attachment. Rows with DeletedAt set are skipped,
// and for duplicate names only the first surviving row applies.
func ResolveCatalog(offerings []models.ServiceOffering) *models.PriceCatalog {
	catalog := &models.PriceCatalog{
		ItemPrice:      make(map[string]float64),
		TailoringPrice: make(map[string]float64),
	}
	for _, offering := range offerings {
		resolveRows(catalog, offering.PoundDetails)
		resolveRows(catalog, offering.UnitDetails)
	}
	return catalog
}

func resolveRows(catalog *models.PriceCatalog, rows []models.CatalogLineItem) {
	for _, row := range rows {
		if row.DeletedAt != nil {
			continue
		}
		if _, seen := catalog.ItemPrice[row.ClothName]; !seen {
			catalog.ItemPrice[row.ClothName] = row.Price
		}
		if row.TailoringType != nil {
			key := TailoringPriceKey(row.ClothName, row.TailoringType.Name)
			if _, seen := catalog.TailoringPrice[key]; !seen {
				catalog.TailoringPrice[key] = row.TailoringType.Price
			}
		}
	}
}

// lookupItemPrice returns nil when the catalog is absent or the name is
// unknown; an unresolved price is "TBD", not an error.
func lookupItemPrice(catalog *models.PriceCatalog, name string) *float64 {
	if catalog == nil {
		return nil
	}
	if price, ok := catalog.ItemPrice[name]; ok {
		return &price
	}
	return nil
}

func lookupTailoringPrice(catalog *models.PriceCatalog, itemName, tailoringType string) *float64 {
	if catalog == nil {
		return nil
	}
	if price, ok := catalog.TailoringPrice[TailoringPriceKey(itemName, tailoringType)]; ok {
		return &price
	}
	return nil
}
