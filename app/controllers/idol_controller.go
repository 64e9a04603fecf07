package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// maxThumbnailSize caps uploaded thumbnail parsing at 8 MiB.
const maxThumbnailSize = 8 << 20

type IdolController struct {
	idols *services.IdolService
}

func NewIdolController(idols *services.IdolService) *IdolController {
	return &IdolController{idols: idols}
}

// List handles GET /api/products. Returns a bare array; with a page query
// parameter it returns one page plus pagination metadata instead.
func (c *IdolController) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("page") != "" {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		idols, p, err := c.idols.Paginate(r.Context(), page, limit)
		if err != nil {
			fail(w, r, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"data":       idols,
			"pagination": p,
		})
		return
	}

	idols, err := c.idols.All(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, idols)
}

// Get handles GET /api/products/{id}.
func (c *IdolController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	idol, err := c.idols.Find(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, idol)
}

// Add handles POST /api/products/add. Accepts JSON, or multipart form data
// when the console attaches a thumbnail.
func (c *IdolController) Add(w http.ResponseWriter, r *http.Request) {
	in, hasFile, ok := c.decodeIdol(w, r)
	if !ok {
		return
	}

	idol, errs, err := c.idols.Add(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if hasFile {
		file, header, err := r.FormFile("thumbnail")
		if err == nil {
			defer file.Close()
			if updated, err := c.idols.SaveThumbnail(r.Context(), idol.ID, header.Filename, file); err == nil {
				idol = updated
			} else {
				fail(w, r, err)
				return
			}
		}
	}

	response.Created(w, idol)
}

// Update handles PUT /api/products/update/{id}.
func (c *IdolController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	in, hasFile, ok := c.decodeIdol(w, r)
	if !ok {
		return
	}

	idol, errs, err := c.idols.Update(r.Context(), id, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if hasFile {
		file, header, err := r.FormFile("thumbnail")
		if err == nil {
			defer file.Close()
			if updated, err := c.idols.SaveThumbnail(r.Context(), idol.ID, header.Filename, file); err == nil {
				idol = updated
			} else {
				fail(w, r, err)
				return
			}
		}
	}

	response.Success(w, idol)
}

// Delete handles DELETE /api/products/delete/{id}.
func (c *IdolController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	if err := c.idols.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.SuccessMessage(w, "Product deleted")
}

// decodeIdol reads an IdolInput from either a JSON body or multipart form
// fields. The bool return values are (input has a thumbnail file, decode ok).
func (c *IdolController) decodeIdol(w http.ResponseWriter, r *http.Request) (services.IdolInput, bool, bool) {
	var in services.IdolInput

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return in, false, decodeJSON(w, r, &in)
	}

	if err := r.ParseMultipartForm(maxThumbnailSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data")
		return in, false, false
	}

	in.Title = r.FormValue("title")
	in.Description = r.FormValue("description")
	in.Size, _ = strconv.ParseFloat(r.FormValue("size"), 64)
	in.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	in.Stock, _ = strconv.Atoi(r.FormValue("stock"))
	if cid, err := strconv.ParseUint(r.FormValue("categoryId"), 10, 32); err == nil {
		in.CategoryID = uint(cid)
	}

	_, hasFile := r.MultipartForm.File["thumbnail"]
	return in, hasFile, true
}
