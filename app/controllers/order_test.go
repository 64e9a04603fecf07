package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

func seedOrder(t *testing.T, status models.OrderStatus) models.Order {
	t.Helper()

	user := models.User{FirstName: "Asha", LastName: "Patel", Email: "asha@example.com", Role: models.RoleCustomer}
	require.NoError(t, database.DB.Create(&user).Error)

	order := models.Order{
		UserID: user.ID,
		Items: []models.OrderItem{
			{IdolID: 1, Title: "Eco Ganesha", Quantity: 2, Price: 2499},
		},
		ShipAddress: models.ShippingAddress{
			FirstName: "Asha",
			LastName:  "Patel",
			Email:     "asha@example.com",
			Phone:     "9876509876",
			Address1:  "7 Lakshmi Road",
			City:      "Pune",
			State:     "Maharashtra",
			Zip:       "411030",
			Country:   "India",
		},
		Subtotal:             4998,
		TaxCharge:            900,
		ShippingCharge:       250,
		TotalPrice:           6148,
		Status:               status,
		OrderDate:            time.Now().Add(-48 * time.Hour),
		ExpectedDeliveryDate: time.Now().Add(5 * 24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(&order).Error)
	return order
}

func TestOrderList(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedOrder(t, models.StatusPaymentSuccessful)

	rec := do(t, h, http.MethodGet, "/api/products/orders/allorders", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	decode(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusPaymentSuccessful, orders[0].Status)
	require.Len(t, orders[0].Items, 1)

	// The shipping snapshot keeps the full address form field set.
	assert.Equal(t, "7 Lakshmi Road", orders[0].ShipAddress.Address1)
	assert.Equal(t, "411030", orders[0].ShipAddress.Zip)
	assert.Equal(t, "India", orders[0].ShipAddress.Country)
	assert.Equal(t, "asha@example.com", orders[0].ShipAddress.Email)
}

func TestOrderStatusUpdate(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	order := seedOrder(t, models.StatusPaymentSuccessful)

	rec := do(t, h, http.MethodPut, "/api/products/orders/update/1",
		map[string]string{"status": "Shipped"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Order
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.Equal(t, order.ID, updated.ID)
}

func TestOrderUnknownStatusRejected(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedOrder(t, models.StatusPaymentSuccessful)

	rec := do(t, h, http.MethodPut, "/api/products/orders/update/1",
		map[string]string{"status": "Refunded"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderCancelThenFrozen(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedOrder(t, models.StatusShipped)

	// A shipped order can still be cancelled.
	rec := do(t, h, http.MethodPut, "/api/products/orders/cancel_order/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// But a cancelled order is frozen.
	rec = do(t, h, http.MethodPut, "/api/products/orders/update/1",
		map[string]string{"status": "Shipped"}, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/products/orders/cancel_order/1", nil, token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderDeliveredIsTerminal(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedOrder(t, models.StatusDelivered)

	rec := do(t, h, http.MethodPut, "/api/products/orders/cancel_order/1", nil, token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderStatusVocabulary(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	rec := do(t, h, http.MethodGet, "/api/products/orders/fetch/status", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The console reads the vocabulary from the orderStatus key.
	var out struct {
		OrderStatus []string `json:"orderStatus"`
	}
	decode(t, rec, &out)
	assert.Equal(t, []string{
		"Awaiting for Payment",
		"Payment Successful",
		"Shipped",
		"Out for Delivery",
		"Delivered",
		"Cancelled",
	}, out.OrderStatus)
}

func TestOrdersByUser(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	order := seedOrder(t, models.StatusAwaitingPayment)

	rec := do(t, h, http.MethodGet, "/api/products/orders/get/user_orders/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	decode(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.UserID, orders[0].UserID)

	// A user with no orders gets an empty array.
	rec = do(t, h, http.MethodGet, "/api/products/orders/get/user_orders/99", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
