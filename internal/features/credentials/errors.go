package credentials

import "errors"

// Rejection kinds stay differentiated internally for logging; the HTTP
// layer collapses gate rejections into one message so callers cannot
// probe which check failed.
var (
	ErrMissingCredential          = errors.New("missing credential")
	ErrInvalidOrExpiredCredential = errors.New("invalid or expired credential")
	ErrPrincipalInactive          = errors.New("principal inactive")
	ErrPrincipalNotActivated      = errors.New("principal not activated")
	ErrInvalidCredential          = errors.New("invalid credential")
)

// UniformRejectionMessage is the only text the gate ever returns to callers.
const UniformRejectionMessage = "invalid or missing API key"

func IsRejection(err error) bool {
	return errors.Is(err, ErrMissingCredential) ||
		errors.Is(err, ErrInvalidOrExpiredCredential) ||
		errors.Is(err, ErrPrincipalInactive)
}
