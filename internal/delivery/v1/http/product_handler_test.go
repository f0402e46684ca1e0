package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func newCatalogServer() *httptest.Server {
	repo := records.NewProductRepo(store.NewMemoryStore(records.ProductSchema()))
	catalogUC := usecase.NewCatalogUC(repo, nopLogger{})

	r := chi.NewRouter()
	NewRouter(r, nopLogger{}).InitCatalog(catalogUC)

	return httptest.NewServer(r)
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestProductHandler_Health(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Product Service is running", body["message"])
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/products",
		`{"name":"Keyboard","description":"mechanical","price":59.99,"quantity":10}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created productResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	getResp, err := http.Get(srv.URL + "/api/v1/products/" + created.ID)
	require.NoError(t, err)
	defer getResp.Body.Close()

	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var got productResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&got))
	assert.Equal(t, created, got)
}

func TestProductHandler_CreateValidation(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	cases := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"empty name", `{"name":"","price":1,"quantity":1}`},
		{"negative price", `{"name":"x","price":-1,"quantity":1}`},
		{"price precision", `{"name":"x","price":1.999,"quantity":1}`},
		{"string price", `{"name":"x","price":"cheap","quantity":1}`},
		{"negative quantity", `{"name":"x","price":1,"quantity":-1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/products", tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestProductHandler_GetUnknown(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/products/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_Search(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	for _, name := range []string{"Gaming Keyboard", "Mouse"} {
		resp := postJSON(t, srv.URL+"/api/v1/products",
			`{"name":"`+name+`","price":1,"quantity":1}`)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/v1/products/search?name=keyboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found []productResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	require.Len(t, found, 1)
	assert.Equal(t, "Gaming Keyboard", found[0].Name)
}

func TestProductHandler_Delete(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/products", `{"name":"Lamp","price":5,"quantity":1}`)
	var created productResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/products/"+created.ID, nil)
	require.NoError(t, err)

	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getResp, err := http.Get(srv.URL + "/api/v1/products/" + created.ID)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}
