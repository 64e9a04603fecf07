package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := New()
	r.Get("/idols/{id}", "idols.get", okHandler)

	url, err := r.URL("idols.get", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/idols/7", url)

	_, err = r.URL("idols.get", nil)
	assert.Error(t, err, "missing params must not produce a broken URL")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawMiddleware bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawMiddleware = true
			next.ServeHTTP(w, r)
		})
	}

	r := New()
	api := r.Group("/api", mw)
	api.Get("/ping", "ping", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawMiddleware)
}

func TestNestedGroupJoinsPaths(t *testing.T) {
	r := New()
	api := r.Group("/api")
	orders := api.Group("/orders")
	orders.Put("/cancel/{id}", "orders.cancel", okHandler)

	path, ok := r.Path("orders.cancel")
	require.True(t, ok)
	assert.Equal(t, "/api/orders/cancel/{id}", path)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/a", "a", okHandler)
	r.Post("/b", "b", okHandler)
	r.Delete("/c", "c", okHandler)

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, http.MethodPost, infos[1].Method)
	assert.Equal(t, "/b", infos[1].Path)
}

func TestParam(t *testing.T) {
	r := New()
	var got string
	r.Get("/users/{id}", "users.get", func(w http.ResponseWriter, req *http.Request) {
		got = Param(req, "id")
	})

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "42", got)
}
