package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
	"github.com/xavierca1/rock-bullion-api/internal/infra/database"
	"github.com/xavierca1/rock-bullion-api/internal/infra/http/handlers"
	"github.com/xavierca1/rock-bullion-api/internal/infra/http/router"
	"github.com/xavierca1/rock-bullion-api/internal/usecase"
)

// startup simula o main: seed do catálogo e montagem do router sobre o store.
func startup(t *testing.T, store *database.Store) http.Handler {
	t.Helper()

	catalogUC := usecase.NewCatalogUseCase(store.Products)
	_, err := catalogUC.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	return router.New(router.Handlers{
		Health:    handlers.NewHealthHandler(),
		Leads:     handlers.NewLeadHandler(usecase.NewCreateLeadUseCase(store.Leads, nil), usecase.NewListLeadsUseCase(store.Leads)),
		Products:  handlers.NewProductHandler(catalogUC),
		SpotPrice: handlers.NewSpotPriceHandler(usecase.NewSpotPriceUseCase()),
	})
}

func do(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func listProducts(t *testing.T, h http.Handler) []entity.Product {
	t.Helper()
	w := do(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Products
}

func TestSeedingIsIdempotentAcrossStartups(t *testing.T) {
	store := database.NewMemoryStore()

	first := listProducts(t, startup(t, store))
	require.Len(t, first, 4)

	names := []string{}
	for _, p := range first {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{
		"1 Gram Gold Bar",
		"100 Gram Gold Bar",
		"1 Kilogram Gold Bar",
		"400 oz Good Delivery Bar",
	}, names)

	// Segundo startup no mesmo store: continua com 4, mesmos ids
	second := listProducts(t, startup(t, store))
	assert.Equal(t, first, second)
}

func TestLeadRoundTrip(t *testing.T) {
	h := startup(t, database.NewMemoryStore())

	before := time.Now().UTC().Add(-time.Second)
	body, _ := json.Marshal(map[string]string{
		"full_name":           "John Test Smith",
		"email":               "john.test@example.com",
		"phone":               "+1-555-123-4567",
		"country":             "United States",
		"consultation_method": "phone",
		"message":             "Interested in 1kg gold bars",
	})

	w := do(t, h, http.MethodPost, "/api/leads", body)
	require.Equal(t, http.StatusOK, w.Code)

	var created usecase.CreateLeadOutput
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Message)

	w = do(t, h, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Leads []entity.Lead `json:"leads"`
		Total int           `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
	require.Equal(t, 1, listed.Total)

	lead := listed.Leads[0]
	assert.Equal(t, created.ID, lead.ID)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "John Test Smith", lead.FullName)
	assert.Equal(t, "United States", *lead.Country)
	assert.True(t, lead.CreatedAt.After(before))
}

func TestLeadMissingEmailIsRejected(t *testing.T) {
	store := database.NewMemoryStore()
	h := startup(t, store)

	w := do(t, h, http.MethodPost, "/api/leads", []byte(`{"full_name":"John Test Smith"}`))

	assert.NotEqual(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	leads, err := store.Leads.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestProductLookup(t *testing.T) {
	h := startup(t, database.NewMemoryStore())
	products := listProducts(t, h)
	require.NotEmpty(t, products)

	w := do(t, h, http.MethodGet, "/api/products/"+products[2].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, products[2], got)

	w = do(t, h, http.MethodGet, "/api/products/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSpotPriceEndpoint(t *testing.T) {
	h := startup(t, database.NewMemoryStore())
	requestTime := time.Now().UTC().Truncate(time.Second)

	w := do(t, h, http.MethodGet, "/api/spot-price", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		GoldPriceUSD   float64 `json:"gold_price_usd"`
		SilverPriceUSD float64 `json:"silver_price_usd"`
		LastUpdated    string  `json:"last_updated"`
		Currency       string  `json:"currency"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Greater(t, resp.GoldPriceUSD, 0.0)
	assert.Greater(t, resp.SilverPriceUSD, 0.0)
	assert.Equal(t, "USD", resp.Currency)

	updated, err := time.Parse(time.RFC3339Nano, resp.LastUpdated)
	require.NoError(t, err)
	assert.False(t, updated.Before(requestTime))
}

func TestGetEndpointsHaveNoSideEffects(t *testing.T) {
	store := database.NewMemoryStore()
	h := startup(t, store)

	do(t, h, http.MethodPost, "/api/leads", []byte(`{"full_name":"A","email":"a@example.com"}`))

	snapshot := func() ([]*entity.Product, []*entity.Lead) {
		ps, err := store.Products.FindAll(context.Background())
		require.NoError(t, err)
		ls, err := store.Leads.FindAll(context.Background())
		require.NoError(t, err)
		return ps, ls
	}

	productsBefore, leadsBefore := snapshot()

	for i := 0; i < 3; i++ {
		for _, path := range []string{"/api/health", "/api/products", "/api/leads", "/api/spot-price", "/api/products/" + productsBefore[0].ID, "/api/products/missing"} {
			do(t, h, http.MethodGet, path, nil)
		}
	}

	productsAfter, leadsAfter := snapshot()
	assert.Equal(t, productsBefore, productsAfter)
	assert.Equal(t, leadsBefore, leadsAfter)
}

func TestHealthEndpoint(t *testing.T) {
	h := startup(t, database.NewMemoryStore())

	w := do(t, h, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"Rock International Bullion API"}`, w.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	h := startup(t, database.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/api/leads", nil)
	req.Header.Set("Origin", "https://rockbullion.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	h := startup(t, database.NewMemoryStore())
	do(t, h, http.MethodGet, "/api/health", nil)

	w := do(t, h, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/health",status="200"}`)
}
