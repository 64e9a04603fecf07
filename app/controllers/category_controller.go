package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// Fetch handles GET /api/products/category/fetch. Returns a bare array;
// an empty catalog yields [] rather than null.
func (c *CategoryController) Fetch(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.All(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, categories)
}

// Add handles POST /api/products/category/add.
func (c *CategoryController) Add(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	category, errs, err := c.categories.Add(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.Created(w, category)
}

// Update handles PUT /api/products/category/update/{id}.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	var in services.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	category, errs, err := c.categories.Update(r.Context(), id, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.Success(w, category)
}

// Delete handles DELETE /api/products/category/delete/{id}.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	if err := c.categories.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.SuccessMessage(w, "Category deleted")
}
