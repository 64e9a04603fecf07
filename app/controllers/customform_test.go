package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

func seedCustomForm(t *testing.T, status models.CustomFormStatus) models.CustomForm {
	t.Helper()

	user := models.User{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com",
		Phone: "9876501234", Role: models.RoleCustomer}
	require.NoError(t, database.DB.Create(&user).Error)

	form := models.CustomForm{
		UserID:         user.ID,
		Suggestion:     "A Ganesha idol in a seated pose",
		Size:           3,
		Specifications: "Eco-friendly clay, painted in pastel shades",
		Thumbnail:      models.CustomFormThumbnail{ImageURL: "https://cdn.kashvi.app/forms/1.jpg"},
		Status:         status,
	}
	require.NoError(t, database.DB.Create(&form).Error)
	return form
}

func TestCustomFormList(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormUnset)

	rec := do(t, h, http.MethodGet, "/api/custom-idol/fetch-list", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The console reads the collection from the result key.
	var out struct {
		Result []models.CustomForm `json:"result"`
	}
	decode(t, rec, &out)
	require.Len(t, out.Result, 1)
	assert.Equal(t, models.CustomFormUnset, out.Result[0].Status)
	assert.Equal(t, "A Ganesha idol in a seated pose", out.Result[0].Suggestion)
}

func TestCustomFormDetailShape(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormUnset)

	rec := do(t, h, http.MethodGet, "/api/custom-idol/fetch-list/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Wire keys the console detail view reads.
	var out struct {
		Result struct {
			Suggestion     string  `json:"suggestion"`
			Size           float64 `json:"size"`
			Specifications string  `json:"otherSpecifications"`
			CreatedDate    string  `json:"createdDate"`
			Thumbnail      struct {
				ImageURL string `json:"image_url"`
			} `json:"thumbnail"`
			User *models.User `json:"user"`
		} `json:"result"`
	}
	decode(t, rec, &out)

	assert.Equal(t, "A Ganesha idol in a seated pose", out.Result.Suggestion)
	assert.Equal(t, float64(3), out.Result.Size)
	assert.Equal(t, "Eco-friendly clay, painted in pastel shades", out.Result.Specifications)
	assert.Equal(t, "https://cdn.kashvi.app/forms/1.jpg", out.Result.Thumbnail.ImageURL)
	assert.NotEmpty(t, out.Result.CreatedDate)
	require.NotNil(t, out.Result.User)
	assert.Equal(t, "Ravi", out.Result.User.FirstName)
}

func TestCustomFormAcceptThenShip(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormUnset)

	rec := do(t, h, http.MethodPut, "/api/custom-idol/update/status/1",
		map[string]string{"status": "Accepted"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var form models.CustomForm
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &form))
	assert.Equal(t, models.CustomFormAccepted, form.Status)

	rec = do(t, h, http.MethodPut, "/api/custom-idol/update/status/1",
		map[string]string{"status": "Shipped"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomFormCannotShipBeforeReview(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormUnset)

	rec := do(t, h, http.MethodPut, "/api/custom-idol/update/status/1",
		map[string]string{"status": "Shipped"}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomFormRejectedIsTerminal(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormRejected)

	rec := do(t, h, http.MethodPut, "/api/custom-idol/update/status/1",
		map[string]string{"status": "Accepted"}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomFormAwaitingPaymentNotAssignable(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomForm(t, models.CustomFormAccepted)

	rec := do(t, h, http.MethodPut, "/api/custom-idol/update/status/1",
		map[string]string{"status": "Awaiting for Payment"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomFormNotFound(t *testing.T) {
	h := setup(t)
	token := adminToken(t)

	rec := do(t, h, http.MethodGet, "/api/custom-idol/fetch-list/42", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
