package authn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errNotObject    = errors.New("body is not a JSON object")
	errMissingField = errors.New("missing field")
)

// Credentials is a parsed sign-in request.
type Credentials struct {
	Email    string
	Password string
}

// ParseCredentials decodes body into Credentials. The body must be a JSON
// object whose email and password members are non-empty strings; anything
// else is a KindBadRequest error. Unknown members are ignored.
func ParseCredentials(body []byte) (*Credentials, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, newError(KindBadRequest, fmt.Errorf("decode body: %w", err))
	}

	// "null" decodes into a nil map without error.
	if fields == nil {
		return nil, newError(KindBadRequest, errNotObject)
	}

	email, err := stringField(fields, "email")
	if err != nil {
		return nil, newError(KindBadRequest, err)
	}

	password, err := stringField(fields, "password")
	if err != nil {
		return nil, newError(KindBadRequest, err)
	}

	return &Credentials{Email: email, Password: password}, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%w %q", errMissingField, name)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("field %q is not a string", name)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("decode field %q: %w", name, err)
	}

	if value == "" {
		return "", fmt.Errorf("field %q is empty", name)
	}

	return value, nil
}
