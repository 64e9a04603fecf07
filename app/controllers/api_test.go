package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/internal/server"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

// setup boots the full application against a fresh in-memory database and
// returns its HTTP handler.
func setup(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // a :memory: DB exists per connection

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Idol{},
		&models.Order{},
		&models.OrderItem{},
		&models.CustomForm{},
		&models.Charges{},
	))
	database.DB = db

	app, err := server.BuildApp(nil, services.NewMemoryOTPStore())
	require.NoError(t, err)

	return app.Router.Handler()
}

// adminToken issues a JWT the way a logged-in console holds one.
func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

// do performs one request against the handler.
func do(t *testing.T, h http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into dest.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// envelope mirrors the standard response wrapper.
type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	decode(t, rec, &env)
	return env
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	h := setup(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/products/category/fetch"},
		{http.MethodGet, "/api/products/orders/allorders"},
		{http.MethodGet, "/api/users/login/userlist"},
		{http.MethodGet, "/api/custom-idol/fetch-list"},
		{http.MethodGet, "/api/charges/fetch"},
		{http.MethodGet, "/api/dashboard/fetch"},
		{http.MethodPost, "/api/graphql"},
	}

	for _, p := range paths {
		rec := do(t, h, p.method, p.path, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	h := setup(t)

	rec := do(t, h, http.MethodGet, "/api/products", nil, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
