package ecvrf

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
	"github.com/smallyu/go-ecvrf/internal/crypto/hashtocurve"
)

// Error kinds. Every failure returned by this package is an *Error whose
// Kind is one of these, so callers can branch with errors.Is.
var (
	ErrInvalidPointEncoding = curves.ErrInvalidPointEncoding
	ErrInvalidProofEncoding = errors.New("invalid proof encoding")
	ErrInvalidProof         = errors.New("invalid proof")
	ErrInvalidPublicKey     = errors.New("invalid public key")
	ErrInvalidSecretKey     = errors.New("invalid secret key")
	ErrHashToCurveFailed    = hashtocurve.ErrHashToCurveFailed
	ErrInsufficientEntropy  = errors.New("insufficient entropy")
	ErrMalformedInput       = errors.New("malformed input")
)

// Error describes a failed VRF operation.
// It records the operation, the error kind and, when there is one, the
// underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err != e.Kind {
		return fmt.Sprintf("ecvrf: %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("ecvrf: %s: %v", e.Op, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil && e.Err != e.Kind {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(op string, kind, err error) *Error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}
