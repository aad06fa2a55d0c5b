package ecdsasecp256k1

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
)

const (
	// FieldSize is the byte length of a coordinate or scalar of secp256k1.
	FieldSize = 32

	// PublicKeySize is the length of an uncompressed point: 0x04 || X || Y.
	PublicKeySize = 2*FieldSize + 1

	// SignatureSize is the length of a packed signature: r || s.
	SignatureSize = 2 * FieldSize
)

// Algorithm is the identity every error of this package is tagged with.
const Algorithm = basicsig.EcdsaSecp256k1

// PublicKeyBytes is an uncompressed secp256k1 point, 0x04 || X || Y.
// It is a value type; two keys are equal when their bytes are.
type PublicKeyBytes [PublicKeySize]byte

// PublicKeyBytesFromSlice copies b into a PublicKeyBytes. It only checks the
// length; whether b is a point on the curve is checked by the operations.
func PublicKeyBytesFromSlice(b []byte) (PublicKeyBytes, error) {
	var pk PublicKeyBytes
	if len(b) != PublicKeySize {
		return pk, basicsig.NewError(basicsig.ErrMalformedPublicKey, Algorithm, b, nil,
			fmt.Sprintf("expected %d bytes, got %d", PublicKeySize, len(b)))
	}
	copy(pk[:], b)
	return pk, nil
}

// String returns the key as lowercase hex.
func (pk PublicKeyBytes) String() string {
	return hex.EncodeToString(pk[:])
}

// SignatureBytes is a packed ECDSA signature: r and s, each a 32-byte
// big-endian unsigned integer, left-padded with zeros. It is not DER.
type SignatureBytes [SignatureSize]byte

// SignatureBytesFromSlice copies b into a SignatureBytes after checking that
// it is exactly SignatureSize bytes long.
func SignatureBytesFromSlice(b []byte) (SignatureBytes, error) {
	var sig SignatureBytes
	if len(b) != SignatureSize {
		return sig, lengthError(b)
	}
	copy(sig[:], b)
	return sig, nil
}

// String returns the signature as lowercase hex.
func (sig SignatureBytes) String() string {
	return hex.EncodeToString(sig[:])
}

// SecretKeyBytes holds a secp256k1 secret key: the DER encoding of an
// RFC 5915 ECPrivateKey (version, scalar, curve OID, public point) inside a
// zeroizing container.
//
// SecretKeyBytes is only created by SecretKeyFromComponents. It must be
// passed by pointer and wiped with Zeroize when no longer needed:
//
//	sk, err := ecdsasecp256k1.SecretKeyFromComponents(scalar, pk)
//	if err != nil {
//	    return err
//	}
//	defer sk.Zeroize()
//
// It has no printable form: fmt and slog render it as "[redacted]".
type SecretKeyBytes struct {
	secret *basicsig.SecretBytes
}

func newSecretKeyBytes(der []byte) *SecretKeyBytes {
	return &SecretKeyBytes{secret: basicsig.NewSecretBytesAndZeroizeArgument(der)}
}

// ExposeSecret returns the stored ECPrivateKey DER without copying. The slice
// must not be retained, modified or logged, and is nil after Zeroize.
func (sk *SecretKeyBytes) ExposeSecret() []byte {
	if sk == nil {
		return nil
	}
	return sk.secret.ExposeSecret()
}

func (sk *SecretKeyBytes) container() *basicsig.SecretBytes {
	if sk == nil {
		return nil
	}
	return sk.secret
}

// Zeroize wipes the key. It is safe to call Zeroize multiple times.
func (sk *SecretKeyBytes) Zeroize() {
	if sk == nil {
		return
	}
	sk.secret.Zeroize()
}

// String implements fmt.Stringer without revealing the key.
func (sk *SecretKeyBytes) String() string {
	return sk.container().String()
}

// GoString implements fmt.GoStringer without revealing the key.
func (sk *SecretKeyBytes) GoString() string {
	return sk.container().GoString()
}

// Format prints the redaction placeholder for every verb.
func (sk *SecretKeyBytes) Format(f fmt.State, verb rune) {
	sk.container().Format(f, verb)
}

// LogValue implements slog.LogValuer.
func (sk *SecretKeyBytes) LogValue() slog.Value {
	return sk.container().LogValue()
}

// MarshalText always fails.
func (sk *SecretKeyBytes) MarshalText() ([]byte, error) {
	return sk.container().MarshalText()
}

// MarshalJSON always fails.
func (sk *SecretKeyBytes) MarshalJSON() ([]byte, error) {
	return sk.container().MarshalJSON()
}
