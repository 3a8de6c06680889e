package models

import "time"

// User is the persisted account record. The store assigns ID on insert.
// PasswordHash is opaque to everything except the password package and must
// never be serialized into a response.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
