package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/commerce-backend/internal/repository/records"
	"github.com/DRSN-tech/commerce-backend/internal/store"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityServer() *httptest.Server {
	identityUC := usecase.NewIdentityUC(
		records.NewUserRepo(store.NewMemoryStore(records.UserSchema())),
		auth.NewBcryptHasher(),
		auth.NewJWTIssuer(&cfg.AuthCfg{JWTSecret: "test-secret", TokenTTL: time.Hour}),
		nopLogger{},
	)

	r := chi.NewRouter()
	NewRouter(r, nopLogger{}).InitIdentity(identityUC)

	return httptest.NewServer(r)
}

func TestUserHandler_RegisterAndLogin(t *testing.T) {
	srv := newIdentityServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/register", `{"email":"a@b.c","password":"secret"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reg registerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reg))
	assert.Equal(t, "User registered successfully", reg.Message)
	assert.NotEmpty(t, reg.UserID)

	loginResp := postJSON(t, srv.URL+"/api/v1/login", `{"email":"a@b.c","password":"secret"}`)
	defer loginResp.Body.Close()

	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var login loginResponse
	require.NoError(t, json.NewDecoder(loginResp.Body).Decode(&login))
	assert.NotEmpty(t, login.Token)
}

func TestUserHandler_RegisterDuplicate(t *testing.T) {
	srv := newIdentityServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/register", `{"email":"a@b.c","password":"secret"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dup := postJSON(t, srv.URL+"/api/v1/register", `{"email":"a@b.c","password":"other"}`)
	defer dup.Body.Close()

	assert.Equal(t, http.StatusConflict, dup.StatusCode)
}

func TestUserHandler_LoginErrors(t *testing.T) {
	srv := newIdentityServer()
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/register", `{"email":"a@b.c","password":"secret"}`)
	resp.Body.Close()

	wrong := postJSON(t, srv.URL+"/api/v1/login", `{"email":"a@b.c","password":"wrong"}`)
	wrong.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)

	unknown := postJSON(t, srv.URL+"/api/v1/login", `{"email":"missing@b.c","password":"secret"}`)
	unknown.Body.Close()
	assert.Equal(t, http.StatusNotFound, unknown.StatusCode)
}
