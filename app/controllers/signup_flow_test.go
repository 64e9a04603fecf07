package controllers_test

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/mail"
)

type mailRecorder struct {
	sent []*mail.Message
}

func (m *mailRecorder) Deliver(msg *mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

var otpRE = regexp.MustCompile(`[0-9]{6}`)

func TestSignupSendOTPRejectsBadEmail(t *testing.T) {
	h := setup(t)
	rec := &mailRecorder{}
	mail.SetSender(rec)
	defer mail.SetSender(nil)

	res := do(t, h, http.MethodPost, "/api/users/signup/send_otp",
		map[string]string{"email": "bad-email"}, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.Code)

	env := decodeEnvelope(t, res)
	assert.Equal(t, "Please enter a valid email address.", env.Errors["email"])
	assert.Empty(t, rec.sent, "no OTP mail for a rejected email")
}

func TestSignupWizardEndToEnd(t *testing.T) {
	h := setup(t)
	rec := &mailRecorder{}
	mail.SetSender(rec)
	defer mail.SetSender(nil)

	// Step 1: request an OTP.
	res := do(t, h, http.MethodPost, "/api/users/signup/send_otp",
		map[string]string{"email": "shashi@example.com"}, "")
	require.Equal(t, http.StatusOK, res.Code)
	require.Len(t, rec.sent, 1)

	code := otpRE.FindString(rec.sent[0].BodyText())
	require.Len(t, code, 6, "OTP mail must carry the 6-digit code")

	// Step 2: verify it.
	res = do(t, h, http.MethodPost, "/api/users/signup/verify_otp",
		map[string]string{"email": "shashi@example.com", "otp": code}, "")
	require.Equal(t, http.StatusOK, res.Code)

	// Steps 3 and 4: submit the full form.
	res = do(t, h, http.MethodPost, "/api/users/signup/admin", map[string]string{
		"firstName":       "Shashi",
		"lastName":        "Ranjan",
		"email":           "shashi@example.com",
		"phone":           "9876543210",
		"otp":             code,
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, res.Code)

	var created models.User
	env := decodeEnvelope(t, res)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.RoleAdmin, created.Role)

	// Stored password is a hash, never the plain text.
	var stored models.User
	require.NoError(t, database.DB.First(&stored, created.ID).Error)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret1"))

	// Login with the new credentials.
	res = do(t, h, http.MethodPost, "/api/users/signup/admin/authenticate",
		map[string]string{"email": "shashi@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, res.Code)

	var login struct {
		Token  string `json:"token"`
		UserID uint   `json:"userId"`
	}
	decode(t, res, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, created.ID, login.UserID)

	// The issued token opens protected routes.
	res = do(t, h, http.MethodGet, "/api/dashboard/fetch", nil, login.Token)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestSignupRejectsWrongOTP(t *testing.T) {
	h := setup(t)
	rec := &mailRecorder{}
	mail.SetSender(rec)
	defer mail.SetSender(nil)

	res := do(t, h, http.MethodPost, "/api/users/signup/send_otp",
		map[string]string{"email": "shashi@example.com"}, "")
	require.Equal(t, http.StatusOK, res.Code)

	res = do(t, h, http.MethodPost, "/api/users/signup/admin", map[string]string{
		"firstName":       "Shashi",
		"lastName":        "Ranjan",
		"email":           "shashi@example.com",
		"phone":           "9876543210",
		"otp":             "000000",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.Code)

	env := decodeEnvelope(t, res)
	assert.Equal(t, "Invalid or expired OTP.", env.Errors["otp"])
}

func TestSignupFieldErrors(t *testing.T) {
	h := setup(t)

	res := do(t, h, http.MethodPost, "/api/users/signup/admin", map[string]string{
		"firstName":       "S",
		"lastName":        "Ranjan",
		"email":           "shashi@example.com",
		"phone":           "12345",
		"otp":             "123456",
		"password":        "secret1",
		"confirmPassword": "other2",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.Code)

	env := decodeEnvelope(t, res)
	assert.Equal(t, "Enter a valid first name (letters only, min 2 chars).", env.Errors["firstName"])
	assert.Equal(t, "Enter a valid 10-digit phone number.", env.Errors["phone"])
	assert.Equal(t, "Passwords do not match.", env.Errors["confirmPassword"])
}

func TestSignupStepValidation(t *testing.T) {
	h := setup(t)

	cases := []struct {
		name   string
		step   int
		fields map[string]string
		code   int
		field  string
		msg    string
	}{
		{
			name:   "step 1 rejects a bad email",
			step:   1,
			fields: map[string]string{"email": "bad-email"},
			code:   http.StatusUnprocessableEntity,
			field:  "email",
			msg:    "Please enter a valid email address.",
		},
		{
			name:   "step 1 rejects a short OTP once entered",
			step:   1,
			fields: map[string]string{"email": "shashi@example.com", "otp": "123"},
			code:   http.StatusUnprocessableEntity,
			field:  "otp",
			msg:    "Please enter a valid 6-digit OTP.",
		},
		{
			name:   "step 1 passes with a valid email",
			step:   1,
			fields: map[string]string{"email": "shashi@example.com"},
			code:   http.StatusOK,
		},
		{
			name:   "step 2 rejects a one-letter first name",
			step:   2,
			fields: map[string]string{"firstName": "S", "lastName": "Ranjan"},
			code:   http.StatusUnprocessableEntity,
			field:  "firstName",
			msg:    "Enter a valid first name (letters only, min 2 chars).",
		},
		{
			name:   "step 3 ignores fields from other steps",
			step:   3,
			fields: map[string]string{"email": "bad-email", "phone": "9876543210"},
			code:   http.StatusOK,
		},
		{
			name:   "step 4 rejects mismatched passwords",
			step:   4,
			fields: map[string]string{"password": "secret1", "confirmPassword": "other2"},
			code:   http.StatusUnprocessableEntity,
			field:  "confirmPassword",
			msg:    "Passwords do not match.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := do(t, h, http.MethodPost, "/api/users/signup/validate",
				map[string]interface{}{"step": tc.step, "fields": tc.fields}, "")
			require.Equal(t, tc.code, res.Code)

			if tc.field != "" {
				env := decodeEnvelope(t, res)
				assert.Equal(t, tc.msg, env.Errors[tc.field])
			}
		})
	}

	res := do(t, h, http.MethodPost, "/api/users/signup/validate",
		map[string]interface{}{"step": 9, "fields": map[string]string{}}, "")
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestLoginRejectsWrongPasswordAndNonAdmin(t *testing.T) {
	h := setup(t)

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	admin := models.User{FirstName: "Kashvi", LastName: "Admin", Email: "admin@kashvi.app",
		Password: hash, Role: models.RoleAdmin}
	customer := models.User{FirstName: "Meera", LastName: "Shah", Email: "meera@example.com",
		Password: hash, Role: models.RoleCustomer}
	require.NoError(t, database.DB.Create(&admin).Error)
	require.NoError(t, database.DB.Create(&customer).Error)

	res := do(t, h, http.MethodPost, "/api/users/signup/admin/authenticate",
		map[string]string{"email": "admin@kashvi.app", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, res.Code)

	// Customers cannot log into the console even with valid credentials.
	res = do(t, h, http.MethodPost, "/api/users/signup/admin/authenticate",
		map[string]string{"email": "meera@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusUnauthorized, res.Code)

	res = do(t, h, http.MethodPost, "/api/users/signup/admin/authenticate",
		map[string]string{"email": "admin@kashvi.app", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, res.Code)
}
