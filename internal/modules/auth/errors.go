package auth

import "errors"

// ErrInvalidCredentials covers every sign-in failure: unknown email, wrong
// password and emails missing from the allow-list. One error, one message,
// no account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")
