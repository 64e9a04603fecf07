package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

func TestDashboardFetch(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	category := models.Category{Name: "Ganesha"}
	require.NoError(t, database.DB.Create(&category).Error)
	idols := []models.Idol{
		{Title: "Eco Ganesha", Size: 1.5, Price: 2499, Stock: 20, CategoryID: category.ID},
		{Title: "Dancing Ganesha", Size: 2, Price: 4999, Stock: 5, CategoryID: category.ID},
	}
	require.NoError(t, database.DB.Create(&idols).Error)

	delivered := seedOrder(t, models.StatusDelivered)
	cancelled := models.Order{
		UserID:     delivered.UserID,
		TotalPrice: 9999,
		Status:     models.StatusCancelled,
		Items:      []models.OrderItem{{IdolID: 1, Title: "Eco Ganesha", Quantity: 1, Price: 9999}},
	}
	require.NoError(t, database.DB.Create(&cancelled).Error)

	rec := do(t, h, http.MethodGet, "/api/dashboard/fetch", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.DashboardStats
	decode(t, rec, &stats)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, delivered.TotalPrice, stats.TotalSales, "cancelled orders do not count as sales")
	assert.Equal(t, int64(3), stats.TotalOrderItems)
	assert.Equal(t, int64(25), stats.InventoryCount)

	// The console reads the nested count shapes.
	assert.Equal(t, int64(2), stats.ProductsCount.ProductsCount)
	assert.Equal(t, int64(1), stats.UsersCount.Count)
	assert.Contains(t, rec.Body.String(), `"productsCount":{"productsCount":2}`)
	assert.Contains(t, rec.Body.String(), `"usersCount":{"count":1}`)
}

func TestChargesFetchBeforeAnyRow(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	rec := do(t, h, http.MethodGet, "/api/charges/fetch", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var charges models.Charges
	decode(t, rec, &charges)
	assert.Zero(t, charges.TaxRate)
	assert.Zero(t, charges.DeliveryCharge)
}

func TestChargesAddAndFetchLatest(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	rec := do(t, h, http.MethodPost, "/api/charges/add",
		map[string]float64{"taxRate": 18, "deliveryCharge": 250}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/charges/add",
		map[string]float64{"taxRate": 12, "deliveryCharge": 199}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Fetch returns the newest row.
	rec = do(t, h, http.MethodGet, "/api/charges/fetch", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var charges models.Charges
	decode(t, rec, &charges)
	assert.Equal(t, float64(12), charges.TaxRate)
	assert.Equal(t, float64(199), charges.DeliveryCharge)
}

func TestChargesValidation(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	rec := do(t, h, http.MethodPost, "/api/charges/add",
		map[string]float64{"taxRate": 180, "deliveryCharge": 250}, token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "taxRate")
}
