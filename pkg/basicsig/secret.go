package basicsig

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/coinbase/basicsig-go/pkg/basicsig/logging"
)

var errSecretNotMarshalable = errors.New("basicsig: secret bytes cannot be marshaled")

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527; go vet's
// copylocks check reports copies of values containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// SecretBytes holds sensitive bytes and wipes them on Zeroize.
//
// Memory Management:
// SecretBytes must be released with Zeroize when no longer needed, preferably
// with defer right after construction so every return path wipes it. A
// finalizer is set as a safety net.
//
// SecretBytes has no printable representation: fmt verbs, slog and the
// encoding interfaces all produce "[redacted]" or an error.
type SecretBytes struct {
	_ noCopy
	b []byte
}

// NewSecretBytesAndZeroizeArgument copies src into a new SecretBytes and
// wipes src. Ownership of the secret moves into the container, so the caller
// must not use src afterwards.
func NewSecretBytesAndZeroizeArgument(src []byte) *SecretBytes {
	s := &SecretBytes{b: make([]byte, len(src))}
	copy(s.b, src)
	ZeroizeBytes(src)

	// Ensure sensitive memory is cleared if the container becomes unreachable
	runtime.SetFinalizer(s, (*SecretBytes).Zeroize)
	return s
}

// ExposeSecret returns the stored bytes without copying. The slice is only
// valid until Zeroize is called and must not be retained or modified.
// It returns nil once the container has been wiped.
func (s *SecretBytes) ExposeSecret() []byte {
	if s == nil {
		return nil
	}
	runtime.KeepAlive(s)
	return s.b
}

// Len returns the number of stored bytes, or zero after Zeroize.
func (s *SecretBytes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Zeroize overwrites the stored bytes with zeros and drops the reference.
// It is safe to call Zeroize multiple times.
func (s *SecretBytes) Zeroize() {
	if s == nil || s.b == nil {
		return
	}
	ZeroizeBytes(s.b)
	s.b = nil
	// Remove finalizer since we've wiped
	runtime.SetFinalizer(s, nil)
}

// String implements fmt.Stringer without revealing the secret.
func (s *SecretBytes) String() string {
	return logging.Placeholder()
}

// GoString implements fmt.GoStringer without revealing the secret.
func (s *SecretBytes) GoString() string {
	return logging.Placeholder()
}

// Format implements fmt.Formatter so that every verb, including %x and %v
// with the + or # flags, prints the redaction placeholder.
func (s *SecretBytes) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, logging.Placeholder())
}

// LogValue implements slog.LogValuer.
func (s *SecretBytes) LogValue() slog.Value {
	return slog.StringValue(logging.Placeholder())
}

// MarshalText always fails; secrets are never serialized implicitly.
func (s *SecretBytes) MarshalText() ([]byte, error) {
	return nil, errSecretNotMarshalable
}

// MarshalJSON always fails; secrets are never serialized implicitly.
func (s *SecretBytes) MarshalJSON() ([]byte, error) {
	return nil, errSecretNotMarshalable
}
