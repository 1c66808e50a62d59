package domain

import "errors"

// Closed error set returned by usecases. Delivery maps each variant to an
// HTTP status; anything outside the set falls through as a 500.
var (
	// ErrOTPNotFound means no pending registration exists for the email.
	ErrOTPNotFound = errors.New("otp not found, please request a new one")
	// ErrOTPExpired means the pending registration passed its expiry and was deleted.
	ErrOTPExpired = errors.New("otp has expired, please request a new one")
	// ErrOTPInvalid means the submitted code did not match; the pending record is kept.
	ErrOTPInvalid = errors.New("invalid otp, please check and try again")
	// ErrOTPDelivery means the code could not be emailed.
	ErrOTPDelivery = errors.New("failed to send verification code")
	// ErrAccountExists means an account with this email is already registered.
	ErrAccountExists = errors.New("an account with this email already exists, please login instead")
	// ErrUserNotFound means no account matches the given email or id.
	ErrUserNotFound = errors.New("no account found with this email address")
	// ErrInvalidCredentials covers both unknown email and wrong password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidImage means the avatar payload was not a decodable base64 image.
	ErrInvalidImage = errors.New("invalid image data")
)
