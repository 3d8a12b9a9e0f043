package service

import "fmt"

// ValidationError blocks a submission before any network call is made. It
// never reaches an entity store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthError is the single generic login failure. It deliberately does not
// distinguish bad credentials from a server error; the underlying cause is
// kept for logs via Unwrap.
type AuthError struct {
	cause error
}

func (e *AuthError) Error() string {
	return "login failed"
}

func (e *AuthError) Unwrap() error {
	return e.cause
}
