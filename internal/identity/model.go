package identity

import "time"

// User represents a registered account. Records are created through
// registration only and never updated or deleted afterwards.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Credentials is the normalized login/registration input, regardless of
// whether the request body arrived form-encoded or as JSON.
type Credentials struct {
	Username string
	Password string
}
