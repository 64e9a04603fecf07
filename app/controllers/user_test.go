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

func seedCustomer(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{FirstName: "Meera", LastName: "Shah", Email: email, Phone: "9876512345", Role: models.RoleCustomer}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func TestUserList(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomer(t, "meera@example.com")

	rec := do(t, h, http.MethodGet, "/api/users/login/userlist", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The console reads the collection from the usersList key.
	var out struct {
		UsersList []models.User `json:"usersList"`
	}
	decode(t, rec, &out)
	require.Len(t, out.UsersList, 1)
	assert.Equal(t, "meera@example.com", out.UsersList[0].Email)

	// Password hashes never leave the API.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserGetAndDelete(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	user := seedCustomer(t, "meera@example.com")

	rec := do(t, h, http.MethodGet, "/api/users/login/userlist/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	decode(t, rec, &got)
	assert.Equal(t, user.Email, got.Email)

	rec = do(t, h, http.MethodDelete, "/api/users/login/delete/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Deleting a user twice yields a 404 the second time.
	rec = do(t, h, http.MethodDelete, "/api/users/login/delete/1", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserAddresses(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomer(t, "meera@example.com")

	// The exact field set the console's address form posts.
	address := map[string]interface{}{
		"firstName": "Meera",
		"lastName":  "Shah",
		"email":     "meera@example.com",
		"phone":     "9876512345",
		"address1":  "12 Temple Road",
		"address2":  "Near Dagdusheth Mandir",
		"city":      "Pune",
		"state":     "Maharashtra",
		"zip":       "411001",
		"country":   "India",
		"isDefault": true,
	}
	rec := do(t, h, http.MethodPost, "/api/users/signup/add_address/1", address, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Address
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "12 Temple Road", created.Address1)
	assert.Equal(t, "411001", created.Zip)
	assert.Equal(t, "India", created.Country)

	rec = do(t, h, http.MethodGet, "/api/users/signup/address/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var addresses []models.Address
	decode(t, rec, &addresses)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Pune", addresses[0].City)
	assert.Equal(t, "meera@example.com", addresses[0].Email)
}

func TestUserAddressValidation(t *testing.T) {
	h := setup(t)
	token := adminToken(t)
	seedCustomer(t, "meera@example.com")

	rec := do(t, h, http.MethodPost, "/api/users/signup/add_address/1",
		map[string]string{"firstName": "Meera", "phone": "12", "email": "not-an-email"}, token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "phone")
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "address1")
	assert.Contains(t, env.Errors, "zip")
	assert.Contains(t, env.Errors, "country")
}
