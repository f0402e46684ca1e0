package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/internal/infrastructure/catalog"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOrdersServer поднимает сервис заказов поверх заглушки каталога
// с одним товаром prod-1 и остатком 5.
func newOrdersServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products/prod-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "prod-1", "name": "Keyboard", "price": 59.99, "quantity": 5,
		})
	}))

	client := catalog.NewClient(&cfg.CatalogClientCfg{
		BaseURL: catalogSrv.URL,
		Timeout: 500 * time.Millisecond,
	}, nopLogger{})

	orderUC := usecase.NewOrderUC(
		records.NewOrderRepo(store.NewMemoryStore(records.OrderSchema())),
		client,
		nopLogger{},
	)

	r := chi.NewRouter()
	NewRouter(r, nopLogger{}).InitOrders(orderUC)
	srv := httptest.NewServer(r)

	return srv, func() {
		srv.Close()
		catalogSrv.Close()
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	srv, cleanup := newOrdersServer(t)
	defer cleanup()

	resp := postJSON(t, srv.URL+"/api/v1/order", `{"product_id":"prod-1","quantity":3}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body placeOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Order placed successfully", body.Message)
	assert.NotEmpty(t, body.OrderID)
	assert.Equal(t, "PLACED", body.Status)

	// Заказ доступен в списке и по id
	listResp, err := http.Get(srv.URL + "/api/v1/orders")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var orders []orderResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, body.OrderID, orders[0].ID)
}

func TestOrderHandler_PlaceOrderErrors(t *testing.T) {
	srv, cleanup := newOrdersServer(t)
	defer cleanup()

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"zero quantity", `{"product_id":"prod-1","quantity":0}`, http.StatusBadRequest},
		{"negative quantity", `{"product_id":"prod-1","quantity":-2}`, http.StatusBadRequest},
		{"insufficient stock", `{"product_id":"prod-1","quantity":10}`, http.StatusConflict},
		{"unknown product", `{"product_id":"missing","quantity":1}`, http.StatusNotFound},
		{"not json", `oops`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/order", tc.body)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}

	// Ни одна из ошибок не создала заказ
	listResp, err := http.Get(srv.URL + "/api/v1/orders")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var orders []orderResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&orders))
	assert.Empty(t, orders)
}

func TestOrderHandler_CatalogUnavailable(t *testing.T) {
	catalogSrv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	catalogURL := catalogSrv.URL
	catalogSrv.Close()

	orderUC := usecase.NewOrderUC(
		records.NewOrderRepo(store.NewMemoryStore(records.OrderSchema())),
		catalog.NewClient(&cfg.CatalogClientCfg{BaseURL: catalogURL, Timeout: 200 * time.Millisecond}, nopLogger{}),
		nopLogger{},
	)

	r := chi.NewRouter()
	NewRouter(r, nopLogger{}).InitOrders(orderUC)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/order", `{"product_id":"prod-1","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestOrderHandler_GetUnknownOrder(t *testing.T) {
	srv, cleanup := newOrdersServer(t)
	defer cleanup()

	resp, err := http.Get(srv.URL + "/api/v1/orders/missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
