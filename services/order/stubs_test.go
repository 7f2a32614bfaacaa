package order_test

import (
	"context"
	"errors"
	"sync"

	"washly/models"
	"washly/services/gateway"
	"washly/services/order"
)

type stubCatalogGateway struct {
	storeCatalog *gateway.StoreCatalog
	dropdowns    []models.DropdownItem
	coupons      []models.CouponCandidate
	err          error
}

func (g *stubCatalogGateway) FetchStoreCatalog(_ context.Context, _, _ string) (*gateway.StoreCatalog, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.storeCatalog, nil
}

func (g *stubCatalogGateway) FetchDropdowns(_ context.Context, _ string) ([]models.DropdownItem, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.dropdowns, nil
}

func (g *stubCatalogGateway) FetchCouponCandidates(_ context.Context) ([]models.CouponCandidate, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.coupons, nil
}

type stubPricingGateway struct {
	fn func(req gateway.BreakdownRequest) (*gateway.BreakdownResponse, error)
}

func (g *stubPricingGateway) GetBreakdown(_ context.Context, req gateway.BreakdownRequest) (*gateway.BreakdownResponse, error) {
	if g.fn == nil {
		return nil, errors.New("pricing service unavailable")
	}
	return g.fn(req)
}

type stubOrderGateway struct {
	checkoutURL string
	err         error
	lastPayload *models.OrderCreationPayload
}

func (g *stubOrderGateway) CreateOrder(_ context.Context, payload models.OrderCreationPayload) (string, error) {
	g.lastPayload = &payload
	if g.err != nil {
		return "", g.err
	}
	return g.checkoutURL, nil
}

type stubRecordRepo struct {
	mu      sync.Mutex
	records []models.OrderRecord
}

func (r *stubRecordRepo) Create(_ context.Context, record models.OrderRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == "" {
		record.ID = "record-1"
	}
	r.records = append(r.records, record)
	return record.ID, nil
}

func (r *stubRecordRepo) GetByID(_ context.Context, id string) (*models.OrderRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, errors.New("order record not found")
}

func (r *stubRecordRepo) GetByUserID(_ context.Context, userID string) ([]models.OrderRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.OrderRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubRecordRepo) DeleteByID(_ context.Context, _ string) error { return nil }

func newTestService(catalog *stubCatalogGateway, pricing *stubPricingGateway, orders *stubOrderGateway) *order.DefaultOrderSessionService {
	if catalog == nil {
		catalog = &stubCatalogGateway{}
	}
	if pricing == nil {
		pricing = &stubPricingGateway{}
	}
	if orders == nil {
		orders = &stubOrderGateway{checkoutURL: "https://pay.example.com/checkout/1"}
	}
	return &order.DefaultOrderSessionService{
		Catalog:  catalog,
		Pricing:  pricing,
		Orders:   orders,
		Records:  &stubRecordRepo{},
		Sessions: order.NewMemorySessionStore(),
	}
}

func washFoldCatalog() *gateway.StoreCatalog {
	return &gateway.StoreCatalog{
		Offerings: []models.ServiceOffering{{
			ServiceType: models.ServiceWashNFold,
			PoundDetails: []models.CatalogLineItem{
				{ClothName: "Mix Cloth", Category: "Mixed", Price: 4},
				{ClothName: "Whites", Category: "Whites", Price: 5},
			},
		}},
		AddOns: []models.AddOn{
			{ID: "addon-1", Name: "Softener", UnitPrice: 2, StockQuantity: 3},
		},
	}
}
