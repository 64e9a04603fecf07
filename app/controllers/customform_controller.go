package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type CustomFormController struct {
	forms *services.CustomFormService
}

func NewCustomFormController(forms *services.CustomFormService) *CustomFormController {
	return &CustomFormController{forms: forms}
}

// List handles GET /api/custom-idol/fetch-list. The console reads the
// collection from the result key.
func (c *CustomFormController) List(w http.ResponseWriter, r *http.Request) {
	forms, err := c.forms.All(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"result": forms})
}

// Get handles GET /api/custom-idol/fetch-list/{id}.
func (c *CustomFormController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	form, err := c.forms.Find(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"result": form})
}

// UpdateStatus handles PUT /api/custom-idol/update/status/{id}.
func (c *CustomFormController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	form, err := c.forms.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, form)
}
