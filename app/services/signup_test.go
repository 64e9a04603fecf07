package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/pkg/mail"
)

func validSignupInput() SignupInput {
	return SignupInput{
		FirstName:       "Shashi",
		LastName:        "Ranjan",
		Email:           "shashi@example.com",
		Phone:           "9876543210",
		OTP:             "123456",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestSignupInputValid(t *testing.T) {
	assert.Empty(t, validSignupInput().Validate())
}

func TestSignupInputFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		field   string
		message string
	}{
		{"bad email", func(in *SignupInput) { in.Email = "bad-email" },
			"email", "Please enter a valid email address."},
		{"short otp", func(in *SignupInput) { in.OTP = "123" },
			"otp", "Please enter a valid 6-digit OTP."},
		{"alpha otp", func(in *SignupInput) { in.OTP = "12345a" },
			"otp", "Please enter a valid 6-digit OTP."},
		{"one-letter first name", func(in *SignupInput) { in.FirstName = "S" },
			"firstName", "Enter a valid first name (letters only, min 2 chars)."},
		{"numeric first name", func(in *SignupInput) { in.FirstName = "Sh4shi" },
			"firstName", "Enter a valid first name (letters only, min 2 chars)."},
		{"bad last name", func(in *SignupInput) { in.LastName = "R." },
			"lastName", "Enter a valid last name (letters only, min 2 chars)."},
		{"short phone", func(in *SignupInput) { in.Phone = "12345" },
			"phone", "Enter a valid 10-digit phone number."},
		{"short password", func(in *SignupInput) { in.Password, in.ConfirmPassword = "a1", "a1" },
			"password", "Password must be at least 6 characters with letters & numbers."},
		{"letters-only password", func(in *SignupInput) { in.Password, in.ConfirmPassword = "abcdef", "abcdef" },
			"password", "Password must be at least 6 characters with letters & numbers."},
		{"digits-only password", func(in *SignupInput) { in.Password, in.ConfirmPassword = "123456", "123456" },
			"password", "Password must be at least 6 characters with letters & numbers."},
		{"mismatched confirmation", func(in *SignupInput) { in.ConfirmPassword = "secret2" },
			"confirmPassword", "Passwords do not match."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignupInput()
			tt.mutate(&in)

			errs := in.Validate()
			require.Contains(t, errs, tt.field)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateStepChecksOnlyItsOwnFields(t *testing.T) {
	// A bad email must not block the phone or password steps.
	in := SignupInput{Email: "bad-email", Phone: "9876543210",
		Password: "secret1", ConfirmPassword: "secret1"}

	assert.Contains(t, in.ValidateStep(1), "email")
	assert.Empty(t, in.ValidateStep(3))
	assert.Empty(t, in.ValidateStep(4))
}

func TestValidateStepOTPOnlyOnceEntered(t *testing.T) {
	in := SignupInput{Email: "shashi@example.com"}
	assert.Empty(t, in.ValidateStep(1), "no OTP error before one is entered")

	in.OTP = "123"
	errs := in.ValidateStep(1)
	assert.Equal(t, "Please enter a valid 6-digit OTP.", errs["otp"])
}

func TestValidateStepNameAndPasswordGates(t *testing.T) {
	in := SignupInput{FirstName: "S", LastName: "Ranjan",
		Password: "secret1", ConfirmPassword: "other2"}

	errs := in.ValidateStep(2)
	assert.Equal(t, "Enter a valid first name (letters only, min 2 chars).", errs["firstName"])
	assert.NotContains(t, errs, "lastName")

	errs = in.ValidateStep(4)
	assert.Equal(t, "Passwords do not match.", errs["confirmPassword"])
}

// mailRecorder captures messages instead of delivering them.
type mailRecorder struct {
	sent []*mail.Message
}

func (m *mailRecorder) Deliver(msg *mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func TestSendOTPRejectsInvalidEmailWithoutSending(t *testing.T) {
	rec := &mailRecorder{}
	mail.SetSender(rec)
	defer mail.SetSender(nil)

	svc := NewAuthService(nil, NewMemoryOTPStore())

	errs, err := svc.SendOTP(context.Background(), "not-an-email")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": "Please enter a valid email address."}, errs)
	assert.Empty(t, rec.sent, "no mail may go out for an invalid address")
}

func TestSendAndVerifyOTP(t *testing.T) {
	rec := &mailRecorder{}
	mail.SetSender(rec)
	defer mail.SetSender(nil)

	store := NewMemoryOTPStore()
	svc := NewAuthService(nil, store)
	ctx := context.Background()

	errs, err := svc.SendOTP(ctx, "shashi@example.com")
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, rec.sent, 1)
	assert.Equal(t, []string{"shashi@example.com"}, rec.sent[0].Recipients())

	// Wrong code is a field error, not a transport error.
	errs, err = svc.VerifyOTP(ctx, "shashi@example.com", "000000")
	require.NoError(t, err)
	assert.Equal(t, "Invalid or expired OTP.", errs["otp"])
}

func TestMemoryOTPStoreExpiry(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a@b.com", "123456", -time.Second))
	ok, err := store.Verify(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "expired codes never verify")
}

func TestMemoryOTPStoreConsumesOnSuccess(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a@b.com", "123456", time.Minute))

	ok, err := store.Verify(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Verify(ctx, "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "a code cannot be replayed")
}
