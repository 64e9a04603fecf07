// Package controllers contains the HTTP handlers of the admin API. Handlers
// decode and authorize requests, delegate to services and translate service
// errors into HTTP responses.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
)

// paramID reads a numeric URL parameter. Returns 0 and writes a 400 when
// the value is not a positive integer.
func paramID(w http.ResponseWriter, r *http.Request, key string) (uint, bool) {
	raw := router.Param(r, key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// decodeJSON parses the request body into dest, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// fail maps service errors onto HTTP responses.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrUnknownStatus):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrCategoryInUse):
		response.Error(w, http.StatusConflict, "Category still has idols assigned to it")
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
