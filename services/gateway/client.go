package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"washly/config"
	"washly/models"

	"golang.org/x/sync/errgroup"
)

// HTTPClient implements the gateway interfaces against the JSON-over-HTTP
// upstream services configured in AppConfig.
type HTTPClient struct {
	CatalogBaseURL string
	PricingBaseURL string
	OrderBaseURL   string
	Client         *http.Client
}

// NewHTTPClient builds a gateway client from the loaded configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		CatalogBaseURL: config.AppConfig.CatalogGatewayURL,
		PricingBaseURL: config.AppConfig.PricingServiceURL,
		OrderBaseURL:   config.AppConfig.OrderServiceURL,
		Client:         &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPClient) httpClient() *http.Client {
	if g.Client == nil {
		return http.DefaultClient
	}
	return g.Client
}

func (g *HTTPClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := g.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d for %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *HTTPClient) postJSON(ctx context.Context, rawURL string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d for %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchStoreCatalog fetches a store's offerings and add-ons in parallel.
func (g *HTTPClient) FetchStoreCatalog(ctx context.Context, storeID, serviceType string) (*StoreCatalog, error) {
	catalog := &StoreCatalog{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var offerings []models.ServiceOffering
		u := fmt.Sprintf("%s/api/stores/%s/offerings?serviceType=%s",
			g.CatalogBaseURL, url.PathEscape(storeID), url.QueryEscape(serviceType))
		if err := g.getJSON(egCtx, u, &offerings); err != nil {
			return fmt.Errorf("failed to fetch offerings: %w", err)
		}
		catalog.Offerings = offerings
		return nil
	})
	eg.Go(func() error {
		var addOns []models.AddOn
		u := fmt.Sprintf("%s/api/stores/%s/addons", g.CatalogBaseURL, url.PathEscape(storeID))
		if err := g.getJSON(egCtx, u, &addOns); err != nil {
			return fmt.Errorf("failed to fetch add-ons: %w", err)
		}
		catalog.AddOns = addOns
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// FetchDropdowns fetches the generic item lists used before a store is chosen.
func (g *HTTPClient) FetchDropdowns(ctx context.Context, serviceType string) ([]models.DropdownItem, error) {
	var items []models.DropdownItem
	u := fmt.Sprintf("%s/api/dropdowns?serviceType=%s", g.CatalogBaseURL, url.QueryEscape(serviceType))
	if err := g.getJSON(ctx, u, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch dropdowns: %w", err)
	}
	return items, nil
}

// FetchCouponCandidates fetches the coupons currently offered for selection.
func (g *HTTPClient) FetchCouponCandidates(ctx context.Context) ([]models.CouponCandidate, error) {
	var coupons []models.CouponCandidate
	u := fmt.Sprintf("%s/api/coupons", g.CatalogBaseURL)
	if err := g.getJSON(ctx, u, &coupons); err != nil {
		return nil, fmt.Errorf("failed to fetch coupon candidates: %w", err)
	}
	return coupons, nil
}

// GetBreakdown asks the pricing service to decompose a subtotal.
func (g *HTTPClient) GetBreakdown(ctx context.Context, req BreakdownRequest) (*BreakdownResponse, error) {
	var resp BreakdownResponse
	u := fmt.Sprintf("%s/api/pricing/breakdown", g.PricingBaseURL)
	if err := g.postJSON(ctx, u, req, &resp); err != nil {
		return nil, fmt.Errorf("pricing service call failed: %w", err)
	}
	return &resp, nil
}

// CreateOrder submits the final payload and returns the checkout URL.
func (g *HTTPClient) CreateOrder(ctx context.Context, payload models.OrderCreationPayload) (string, error) {
	var resp struct {
		CheckoutURL string `json:"checkout_url"`
	}
	u := fmt.Sprintf("%s/api/orders", g.OrderBaseURL)
	if err := g.postJSON(ctx, u, payload, &resp); err != nil {
		return "", fmt.Errorf("order creation call failed: %w", err)
	}
	if resp.CheckoutURL == "" {
		return "", fmt.Errorf("order creation response missing checkout_url")
	}
	return resp.CheckoutURL, nil
}
