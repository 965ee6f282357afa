package models

import "time"

// Credential is a stored login. Username is the identity key; PasswordHash
// is an opaque bcrypt hash with its salt embedded.
type Credential struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
