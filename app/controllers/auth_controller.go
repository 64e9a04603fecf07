package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// AuthController serves the signup wizard and login endpoints.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// SendOTP handles POST /api/users/signup/send_otp.
func (c *AuthController) SendOTP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	errs, err := c.auth.SendOTP(r.Context(), in.Email)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.SuccessMessage(w, "OTP sent to your email")
}

// VerifyOTP handles POST /api/users/signup/verify_otp.
func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	errs, err := c.auth.VerifyOTP(r.Context(), in.Email, in.OTP)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.SuccessMessage(w, "OTP verified")
}

// ValidateStep handles POST /api/users/signup/validate. The wizard calls it
// before letting the user advance, so errors here mirror the inline ones.
func (c *AuthController) ValidateStep(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Step   int                  `json:"step"`
		Fields services.SignupInput `json:"fields"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	if in.Step < 1 || in.Step > 4 {
		response.Error(w, http.StatusBadRequest, "Unknown signup step")
		return
	}

	if errs := in.Fields.ValidateStep(in.Step); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.SuccessMessage(w, "Step valid")
}

// Signup handles POST /api/users/signup/admin.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, errs, err := c.auth.SignupAdmin(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	response.Created(w, user)
}

// Login handles POST /api/users/signup/admin/authenticate. The console
// stores the returned token and userId.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	token, userID, err := c.auth.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"token":  token,
		"userId": userID,
	})
}
