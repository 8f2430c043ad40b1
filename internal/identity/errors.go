package identity

import "errors"

var (
	// ErrMissingCredentials signals an empty username or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUsernameTaken signals a registration against an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// login failures. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned by repositories for absent records. The
	// login boundary must never surface it in place of ErrInvalidCredentials.
	ErrUserNotFound = errors.New("user not found")
)
