package ecdsasecp256k1

import (
	"github.com/coinbase/basicsig-go/pkg/basicsig"
	"github.com/coinbase/basicsig-go/pkg/basicsig/internal/curve"
	"github.com/coinbase/basicsig-go/pkg/basicsig/internal/der"
)

// reasonInvalidSecretKey is the only cause ever reported for a rejected
// secret key. Primitive diagnostics are dropped since they may depend on the
// secret value.
const reasonInvalidSecretKey = "invalid secret key"

// SecretKeyFromComponents builds a secret key from a big-endian scalar and
// the public key it must correspond to.
//
// scalar may carry leading zero bytes beyond FieldSize; its value must lie in
// [1, N-1] and scalar*G must equal pk. The scalar is neither retained nor
// modified: callers that own it should wipe it with basicsig.ZeroizeBytes.
//
// Errors:
//   - ErrAlgorithmNotSupported if the curve group cannot be constructed
//   - ErrMalformedPublicKey if pk is not an uncompressed point on the curve
//   - ErrMalformedSecretKey if the scalar is out of range or does not match pk
func SecretKeyFromComponents(scalar []byte, pk PublicKeyBytes) (*SecretKeyBytes, error) {
	g, err := newGroup()
	if err != nil {
		return nil, err
	}
	point, err := parsePublicKeyBytes(g, pk)
	if err != nil {
		return nil, err
	}

	k, err := g.NewScalarFromBytes(scalar)
	if err != nil {
		return nil, malformedSecretKey()
	}
	defer k.Free()
	if !g.Matches(k, point) {
		return nil, malformedSecretKey()
	}

	var fixed [FieldSize]byte
	defer basicsig.ZeroizeBytes(fixed[:])
	k.PutBytes(&fixed)

	enc, err := der.MarshalECPrivateKey(fixed[:], curve.OIDNamedCurveSecp256k1, pk[:])
	if err != nil {
		basicsig.ZeroizeBytes(enc)
		return nil, malformedSecretKey()
	}
	// The container copies enc and wipes it.
	return newSecretKeyBytes(enc), nil
}

// secretScalar decodes the scalar stored in sk. The stored structure must
// name secp256k1 and carry a public point equal to scalar*G, so a container
// that was tampered with is rejected before it reaches the signer. The
// caller must Free the result.
func secretScalar(g *curve.Group, sk *SecretKeyBytes) (*curve.Scalar, error) {
	raw := sk.ExposeSecret()
	if len(raw) == 0 {
		return nil, malformedSecretKey()
	}
	parsed, err := der.ParseECPrivateKey(raw)
	if err != nil {
		return nil, malformedSecretKey()
	}
	if parsed.NamedCurve != nil && !parsed.NamedCurve.Equal(curve.OIDNamedCurveSecp256k1) {
		return nil, malformedSecretKey()
	}
	if len(parsed.PrivateKey) != FieldSize {
		return nil, malformedSecretKey()
	}
	k, err := g.NewScalarFromBytes(parsed.PrivateKey)
	if err != nil {
		return nil, malformedSecretKey()
	}
	if parsed.PublicKey != nil {
		point, err := g.ParseUncompressedPoint(parsed.PublicKey)
		if err != nil || !g.Matches(k, point) {
			k.Free()
			return nil, malformedSecretKey()
		}
	}
	return k, nil
}

func malformedSecretKey() error {
	return basicsig.NewError(basicsig.ErrMalformedSecretKey, Algorithm, nil, nil, reasonInvalidSecretKey)
}
