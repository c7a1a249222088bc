package authn

import (
	"errors"
	"net/http"
)

const successMessage = "Login successful"

var errNoMatch = errors.New("no user matches the credentials")

// Directory is the read-only user store consulted for sign-in.
type Directory interface {
	AllUsers() []User
}

// Response is the result of a successful sign-in.
type Response struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

// Authenticator checks credentials against a Directory. It holds no mutable
// state and is safe for concurrent use.
type Authenticator struct {
	directory Directory
}

// Handle runs a sign-in request through the method check, payload validation,
// credential lookup and response shaping. Each step returns on failure with an
// *Error whose Kind tells the caller which status to report.
func (a *Authenticator) Handle(method string, body []byte) (*Response, error) {
	if method != http.MethodPost {
		return nil, newError(KindMethodNotAllowed, nil)
	}

	creds, err := ParseCredentials(body)
	if err != nil {
		return nil, err
	}

	profile, err := a.Authenticate(creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}

	return &Response{Message: successMessage, User: *profile}, nil
}

// Authenticate returns the profile of the first user, in directory order, whose
// email and password both equal the given ones. Unknown emails and wrong
// passwords produce the same KindUnauthorized error.
//
// This compares cleartext passwords and should not be used in production.
// A real deployment must store salted hashes and compare in constant time.
func (a *Authenticator) Authenticate(email, password string) (*Profile, error) {
	if a.directory == nil {
		return nil, newError(KindUnauthorized, errNoMatch)
	}

	for _, u := range a.directory.AllUsers() {
		if u.Email == email && u.Password == password {
			p := Sanitize(u)
			return &p, nil
		}
	}

	return nil, newError(KindUnauthorized, errNoMatch)
}

// NewAuthenticator creates an Authenticator backed by the given directory.
func NewAuthenticator(directory Directory) *Authenticator {
	return &Authenticator{directory: directory}
}
