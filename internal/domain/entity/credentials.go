// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credentials is the email and password pair exchanged for a session token.
// The struct tags are enforced by the validation package before any request is built.
type Credentials struct {
	Email    string `validate:"required,email_shape"` // Must look like local@domain.tld.
	Password string `validate:"min=6,max=128"`        // Length counted in characters.
}

// RegistrationAck is the backend's acknowledgment of a new account.
// Raw holds the decoded document as received; Message and UserID are read from it when present.
type RegistrationAck struct {
	Message string
	UserID  string
	Raw     map[string]any
}
