// Package entity contains the core business objects of areacheck.
package entity

import "time"

// User is an account that can log in and submit points.
// Username is unique and never changes after signup.
type User struct {
	ID           int64     // Assigned by the repository on Create.
	Username     string    // Login name, unique across the system.
	PasswordHash string    `json:"-"` // bcrypt digest, never the plaintext.
	CreatedAt    time.Time // Timestamp of signup.
}
