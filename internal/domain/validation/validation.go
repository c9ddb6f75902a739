// Package validation holds the shared field-validation rules for the
// inventory domain. Every validator collects ALL violated rules into an
// ordered list (insertion order = check order) instead of failing fast, so
// callers can surface every problem at once.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxUsernameLength caps the registration username.
	MaxUsernameLength = 20

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// Name and description bounds shared by categories and products.
	MinNameLength        = 3
	MaxNameLength        = 50
	MaxDescriptionLength = 255
)

var (
	// A simple local@domain.tld shape: no whitespace or '@' in the local
	// part, and a domain containing at least one dot.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)

	// The canonical special-character class. One shared definition; the
	// password rule and its message both refer to this set.
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// RegisterFields validates a registration request. Check order: username,
// email, password length, uppercase, special character.
func RegisterFields(username, email, password string) []string {
	var errs []string

	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		errs = append(errs, "The username cannot exceed 20 characters and is required.")
	}

	if email == "" || !emailRegex.MatchString(email) {
		errs = append(errs, "Must be a valid email.")
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		errs = append(errs, "The password must be at least 8 characters long.")
	}

	if !uppercaseRegex.MatchString(password) {
		errs = append(errs, "The password must have at least one uppercase letter.")
	}

	if !specialCharRegex.MatchString(password) {
		errs = append(errs, "The password must have at least one special character.")
	}

	return errs
}

// LoginFields validates a login request. Only the email shape and password
// length are checked; content rules apply at registration time.
func LoginFields(email, password string) []string {
	var errs []string

	if email == "" || !emailRegex.MatchString(email) {
		errs = append(errs, "Must be a valid email.")
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		errs = append(errs, "The password must be at least 8 characters long.")
	}

	return errs
}

// CategoryFields validates a category create or update. nameTaken reports
// whether another category (self excluded) already uses the name; it is only
// consulted when the name itself is well-formed.
func CategoryFields(name, description string, nameTaken bool) []string {
	var errs []string

	switch {
	case strings.TrimSpace(name) == "":
		errs = append(errs, "The name field is required.")
	case utf8.RuneCountInString(name) < MinNameLength || utf8.RuneCountInString(name) > MaxNameLength:
		errs = append(errs, "The name must be between 3 and 50 characters long.")
	case nameTaken:
		errs = append(errs, "A category with this name already exists.")
	}

	switch {
	case strings.TrimSpace(description) == "":
		errs = append(errs, "The description field is required.")
	case utf8.RuneCountInString(description) > MaxDescriptionLength:
		errs = append(errs, "The description cannot exceed 255 characters.")
	}

	return errs
}

// ProductFields validates a product create or update. Price and quantity are
// pointers so an absent field can be told apart from a zero value.
func ProductFields(name string, categoryID uint, price *float64, quantity *int, nameTaken bool) []string {
	var errs []string

	switch {
	case strings.TrimSpace(name) == "":
		errs = append(errs, "The name field is required.")
	case utf8.RuneCountInString(name) < MinNameLength || utf8.RuneCountInString(name) > MaxNameLength:
		errs = append(errs, "The name must be between 3 and 50 characters long.")
	case nameTaken:
		errs = append(errs, "A product with this name already exists.")
	}

	if categoryID == 0 {
		errs = append(errs, "The category ID field is required.")
	}

	switch {
	case price == nil:
		errs = append(errs, "The price field is required.")
	case *price <= 0:
		errs = append(errs, "The price must be greater than 0.")
	}

	switch {
	case quantity == nil:
		errs = append(errs, "The quantity field is required.")
	case *quantity < 0:
		errs = append(errs, "The quantity cannot be negative.")
	}

	return errs
}
