package curve

import (
	"crypto/subtle"
	"errors"
	"runtime"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrScalarRange is returned when bytes do not encode a scalar in [1, N-1].
var ErrScalarRange = errors.New("curve: scalar out of range")

// Scalar is a secret scalar modulo the group order, held in the primitive's
// constant-time representation.
//
// Memory Management:
// Scalars must be released with Free when no longer needed, preferably with
// defer. A finalizer is set as a safety net.
type Scalar struct {
	v secp256k1.ModNScalar
}

// NewScalarFromBytes parses b as a big-endian unsigned integer. Leading zero
// bytes beyond the field size are accepted; the value must lie in [1, N-1].
// b is neither retained nor modified.
func (g *Group) NewScalarFromBytes(b []byte) (*Scalar, error) {
	fs := g.curve.FieldSize()
	if len(b) > fs {
		excess := b[:len(b)-fs]
		if subtle.ConstantTimeCompare(excess, make([]byte, len(excess))) != 1 {
			return nil, ErrScalarRange
		}
		b = b[len(b)-fs:]
	}

	s := &Scalar{}
	overflow := s.v.SetByteSlice(b)
	if overflow || s.v.IsZero() {
		s.v.Zero()
		return nil, ErrScalarRange
	}

	// Ensure sensitive memory is cleared if the Scalar becomes unreachable
	runtime.SetFinalizer(s, (*Scalar).Free)
	return s, nil
}

// PutBytes writes the 32-byte big-endian encoding of s into out. out holds
// secret data afterwards and must be wiped by the caller.
func (s *Scalar) PutBytes(out *[32]byte) {
	s.v.PutBytes(out)
	runtime.KeepAlive(s)
}

// Free zeroizes the scalar. It is safe to call Free multiple times.
func (s *Scalar) Free() {
	if s == nil {
		return
	}
	s.v.Zero()
	// Remove finalizer since we've freed
	runtime.SetFinalizer(s, nil)
}
