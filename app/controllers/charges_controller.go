package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type ChargesController struct {
	charges *services.ChargesService
}

func NewChargesController(charges *services.ChargesService) *ChargesController {
	return &ChargesController{charges: charges}
}

// Fetch handles GET /api/charges/fetch.
func (c *ChargesController) Fetch(w http.ResponseWriter, r *http.Request) {
	charges, err := c.charges.Fetch(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, charges)
}

// Add handles POST /api/charges/add.
func (c *ChargesController) Add(w http.ResponseWriter, r *http.Request) {
	var in services.ChargesInput
	if !decodeJSON(w, r, &in) {
		return
	}

	charges, errs, err := c.charges.Add(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.Created(w, charges)
}
