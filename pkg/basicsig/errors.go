package basicsig

import (
	"encoding/hex"
	"strings"
)

// AlgorithmID identifies the signature scheme an error or key belongs to.
type AlgorithmID int

const (
	AlgorithmUnknown AlgorithmID = iota
	EcdsaSecp256k1
)

// String returns the name of the algorithm.
func (a AlgorithmID) String() string {
	switch a {
	case EcdsaSecp256k1:
		return "EcdsaSecp256k1"
	default:
		return "Unknown"
	}
}

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific CryptoError.
const (
	// ErrAlgorithmNotSupported is returned when the curve or algorithm
	// primitive cannot be constructed. It does not depend on input data.
	ErrAlgorithmNotSupported = ErrorKind("AlgorithmNotSupported")

	// ErrMalformedPublicKey is returned when public key bytes do not decode to
	// a valid point or are not in canonical form.
	ErrMalformedPublicKey = ErrorKind("MalformedPublicKey")

	// ErrMalformedSecretKey is returned when a secret key cannot be decoded or
	// does not match its public key. Its reason is always generic.
	ErrMalformedSecretKey = ErrorKind("MalformedSecretKey")

	// ErrMalformedSignature is returned when signature bytes have the wrong
	// length or a component does not fit the field size.
	ErrMalformedSignature = ErrorKind("MalformedSignature")

	// ErrInvalidArgument is returned when the signing primitive rejects an
	// operation for reasons other than a malformed key.
	ErrInvalidArgument = ErrorKind("InvalidArgument")

	// ErrSignatureVerification is returned when a signature does not verify,
	// whether the primitive failed or the signature is invalid.
	ErrSignatureVerification = ErrorKind("SignatureVerification")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// CryptoError is the error type returned by every operation of this module.
//
// KeyBytes and SigBytes only ever hold public data: an offending public key
// or signature. Reason is a human-readable cause and never includes secret
// material or diagnostics that could be correlated with it.
type CryptoError struct {
	Kind      ErrorKind
	Algorithm AlgorithmID
	KeyBytes  []byte
	SigBytes  []byte
	Reason    string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *CryptoError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString("(algorithm: ")
	b.WriteString(e.Algorithm.String())
	if e.KeyBytes != nil {
		b.WriteString(", key_bytes: ")
		b.WriteString(hex.EncodeToString(e.KeyBytes))
	}
	if e.SigBytes != nil {
		b.WriteString(", sig_bytes: ")
		b.WriteString(hex.EncodeToString(e.SigBytes))
	}
	if e.Reason != "" {
		b.WriteString(", internal_error: ")
		b.WriteString(e.Reason)
	}
	b.WriteString(")")
	return b.String()
}

// Unwrap returns the underlying wrapped error kind.
func (e *CryptoError) Unwrap() error {
	return e.Kind
}

// Is reports whether target is a *CryptoError of the same kind, so that two
// errors built by the same failure compare equal under errors.Is.
func (e *CryptoError) Is(target error) bool {
	t, ok := target.(*CryptoError)
	return ok && t.Kind == e.Kind
}

// NewError creates a CryptoError of the given kind. key and sig are copied so
// the error does not alias caller buffers.
func NewError(kind ErrorKind, alg AlgorithmID, key, sig []byte, reason string) *CryptoError {
	return &CryptoError{
		Kind:      kind,
		Algorithm: alg,
		KeyBytes:  cloneBytes(key),
		SigBytes:  cloneBytes(sig),
		Reason:    reason,
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
