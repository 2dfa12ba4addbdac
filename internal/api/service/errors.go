package service

import "errors"

// Sentinel errors returned by the services. Controllers map each one to a
// single HTTP status; the messages are user-facing.
var (
	// ErrMissingFields is returned when a registration field is empty.
	ErrMissingFields = errors.New("Name, Email, Password must be provided")

	// ErrInvalidEmail is returned when the email fails the syntactic check.
	ErrInvalidEmail = errors.New("Provide a valid email address")

	// ErrDuplicateEmail is returned when the normalized email is taken.
	ErrDuplicateEmail = errors.New("User already exists")

	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrUserNotFound is returned when the authenticated user's row is gone.
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidTags is returned when a tag field is missing.
	ErrInvalidTags = errors.New("car_type, company and dealer tags must be provided")

	// ErrTooManyImages is returned when a listing carries more than ten images.
	ErrTooManyImages = errors.New("You can upload up to 10 images only.")

	// ErrCarNotFound covers both a missing listing and one owned by another
	// user, so record ids cannot be enumerated across accounts.
	ErrCarNotFound = errors.New("Car not found")
)
