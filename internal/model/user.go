package model

import "time"

// User represents a customer account.  Accounts live only in process
// memory; there is no persistence layer in this service, so the store
// assigns IDs sequentially at registration time.
//
// Fields:
//  ID           – identifier assigned by the user store.
//  FirstName    – given name (nombre).
//  LastName     – family name (apellido).
//  Email        – unique, lower-cased email address.
//  Phone        – ten digit phone number.
//  BirthDate    – date of birth in ISO form.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – registration timestamp.
type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	BirthDate    string
	PasswordHash string
	CreatedAt    time.Time
}

// RefreshToken is a long-lived session token held by the token store.
// Only the SHA-256 hash of the raw value is retained.
//
// Fields:
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (nil while active).
type RefreshToken struct {
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
}
