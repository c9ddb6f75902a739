// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account in the inventory system. The email address is the
// identity: it is lowercase-normalized at registration and never changes.
type User struct {
	Email        string    // Primary identifier, lowercase-normalized.
	Username     string    // Display name, at most 20 characters.
	PasswordHash string    // Opaque bcrypt hash, never exposed outside the auth flow.
	CreatedAt    time.Time // Timestamp of registration.
}
