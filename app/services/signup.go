package services

import (
	"regexp"
	"unicode"
)

// SignupInput is the payload of the final signup step. The console collects
// it across a four-step wizard (email, OTP, personal details, password) but
// submits everything at once.
type SignupInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validation messages match the console's inline field errors exactly so
// the UI can render API errors and client-side errors identically.
const (
	msgInvalidEmail     = "Please enter a valid email address."
	msgInvalidOTP       = "Please enter a valid 6-digit OTP."
	msgInvalidFirstName = "Enter a valid first name (letters only, min 2 chars)."
	msgInvalidLastName  = "Enter a valid last name (letters only, min 2 chars)."
	msgInvalidPhone     = "Enter a valid 10-digit phone number."
	msgWeakPassword     = "Password must be at least 6 characters with letters & numbers."
	msgPasswordMismatch = "Passwords do not match."
	msgOTPExpired       = "Invalid or expired OTP."
)

var (
	signupEmailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	signupOTPRE   = regexp.MustCompile(`^[0-9]{6}$`)
	signupNameRE  = regexp.MustCompile(`^[A-Za-z]{2,}$`)
	signupPhoneRE = regexp.MustCompile(`^[0-9]{10}$`)
)

func validEmail(email string) bool { return signupEmailRE.MatchString(email) }
func validOTP(otp string) bool     { return signupOTPRE.MatchString(otp) }

// validPassword checks for at least 6 alphanumeric characters containing
// both a letter and a digit.
func validPassword(p string) bool {
	if len(p) < 6 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, c := range p {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// ValidateStep checks only the fields the given wizard step gates: step 1
// is the email (plus the OTP once one has been entered), step 2 the name
// fields, step 3 the phone number and step 4 the password pair.
func (in SignupInput) ValidateStep(step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if !validEmail(in.Email) {
			errs["email"] = msgInvalidEmail
		}
		if in.OTP != "" && !validOTP(in.OTP) {
			errs["otp"] = msgInvalidOTP
		}
	case 2:
		if !signupNameRE.MatchString(in.FirstName) {
			errs["firstName"] = msgInvalidFirstName
		}
		if !signupNameRE.MatchString(in.LastName) {
			errs["lastName"] = msgInvalidLastName
		}
	case 3:
		if !signupPhoneRE.MatchString(in.Phone) {
			errs["phone"] = msgInvalidPhone
		}
	case 4:
		if !validPassword(in.Password) {
			errs["password"] = msgWeakPassword
		} else if in.Password != in.ConfirmPassword {
			errs["confirmPassword"] = msgPasswordMismatch
		}
	}

	return errs
}

// Validate checks every wizard field and returns fieldName → message.
func (in SignupInput) Validate() map[string]string {
	errs := map[string]string{}

	if !validEmail(in.Email) {
		errs["email"] = msgInvalidEmail
	}
	if !validOTP(in.OTP) {
		errs["otp"] = msgInvalidOTP
	}
	if !signupNameRE.MatchString(in.FirstName) {
		errs["firstName"] = msgInvalidFirstName
	}
	if !signupNameRE.MatchString(in.LastName) {
		errs["lastName"] = msgInvalidLastName
	}
	if !signupPhoneRE.MatchString(in.Phone) {
		errs["phone"] = msgInvalidPhone
	}
	if !validPassword(in.Password) {
		errs["password"] = msgWeakPassword
	} else if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = msgPasswordMismatch
	}

	return errs
}
