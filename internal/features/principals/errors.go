package principals

import "errors"

var (
	ErrPrincipalNotFound        = errors.New("principal not found")
	ErrPrincipalExists          = errors.New("user with this username or email already exists")
	ErrInvalidRegistrationToken = errors.New("invalid registration claims")
)
