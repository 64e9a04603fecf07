package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// List handles GET /api/users/login/userlist. The console reads the
// collection from the usersList key.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"usersList": users})
}

// Get handles GET /api/users/login/userlist/{id}.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	user, err := c.users.Find(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/users/login/delete/{id}.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r, "id")
	if !ok {
		return
	}

	if err := c.users.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.SuccessMessage(w, "User deleted")
}

// AddAddress handles POST /api/users/signup/add_address/{userId}.
func (c *UserController) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramID(w, r, "userId")
	if !ok {
		return
	}

	var in services.AddressInput
	if !decodeJSON(w, r, &in) {
		return
	}

	address, errs, err := c.users.AddAddress(r.Context(), userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.Created(w, address)
}

// Addresses handles GET /api/users/signup/address/{userId}.
func (c *UserController) Addresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := paramID(w, r, "userId")
	if !ok {
		return
	}

	addresses, err := c.users.Addresses(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, addresses)
}
