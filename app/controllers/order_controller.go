package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List handles GET /api/products/orders/allorders. Returns a bare array.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.All(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, orders)
}

// UserOrders handles GET /api/products/orders/get/user_orders/{id}.
func (c *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	orders, err := c.orders.ByUser(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/products/orders/update/{id}.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// Cancel handles PUT /api/products/orders/cancel_order/{id}.
func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	order, err := c.orders.Cancel(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// Statuses handles GET /api/products/orders/fetch/status. The console reads
// the vocabulary from the orderStatus key for its dropdown.
func (c *OrderController) Statuses(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"orderStatus": c.orders.Statuses(r.Context()),
	})
}
