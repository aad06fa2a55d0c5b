package ecdsasecp256k1

import (
	"bytes"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
	"github.com/coinbase/basicsig-go/pkg/basicsig/internal/curve"
	"github.com/coinbase/basicsig-go/pkg/basicsig/internal/der"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// AlgorithmIdentifier returns the PKIX identifier of ECDSA over secp256k1:
// id-ecPublicKey (1.2.840.10045.2.1) with the secp256k1 named curve
// (1.3.132.0.10) as parameter.
func AlgorithmIdentifier() basicsig.PkixAlgorithmIdentifier {
	return basicsig.NewPkixAlgorithmIdentifierWithOIDParam(curve.OIDPublicKeyECDSA, curve.OIDNamedCurveSecp256k1)
}

// PublicKeyFromDER parses a DER SubjectPublicKeyInfo and returns the
// uncompressed point it carries.
//
// Only the canonical encoding is accepted: the point is decoded, re-encoded
// uncompressed, and the resulting DER must equal pkDER byte for byte. Valid
// but non-canonical inputs, such as a compressed point, are rejected rather
// than normalised.
//
// Errors:
//   - ErrAlgorithmNotSupported if the curve group cannot be constructed
//   - ErrMalformedPublicKey if pkDER cannot be parsed ("cannot parse: ...")
//     or is not canonical ("non-canonical encoding")
func PublicKeyFromDER(pkDER []byte) (PublicKeyBytes, error) {
	var pk PublicKeyBytes
	g, err := newGroup()
	if err != nil {
		return pk, err
	}

	info, err := der.ParseSubjectPublicKeyInfo(pkDER)
	if err != nil {
		return pk, malformedPublicKey(pkDER, "cannot parse: "+err.Error())
	}
	alg := AlgorithmIdentifier()
	if !info.Algorithm.Equal(alg.Algorithm) {
		return pk, malformedPublicKey(pkDER, "cannot parse: not an EC public key: "+info.Algorithm.String())
	}
	if info.Parameters == nil {
		return pk, malformedPublicKey(pkDER, "cannot parse: EC parameters are not a named curve")
	}
	if !info.Parameters.Equal(alg.Parameters) {
		return pk, malformedPublicKey(pkDER, "cannot parse: unsupported curve "+info.Parameters.String())
	}
	point, err := g.ParsePoint(info.PublicKey)
	if err != nil {
		return pk, malformedPublicKey(pkDER, "cannot parse: "+err.Error())
	}
	raw := g.EncodeUncompressed(point)

	// Check pkDER is in canonical form (uncompressed).
	canon, err := marshalPublicKey(raw)
	if err != nil {
		return pk, malformedPublicKey(pkDER, "cannot encode decoded key")
	}
	if !bytes.Equal(canon, pkDER) {
		return pk, malformedPublicKey(pkDER, "non-canonical encoding")
	}
	copy(pk[:], raw)
	return pk, nil
}

// PublicKeyToDER returns the canonical DER SubjectPublicKeyInfo of pk.
//
// Errors:
//   - ErrAlgorithmNotSupported if the curve group cannot be constructed
//   - ErrMalformedPublicKey if pk is not an uncompressed point on the curve
func PublicKeyToDER(pk PublicKeyBytes) ([]byte, error) {
	g, err := newGroup()
	if err != nil {
		return nil, err
	}
	if _, err := g.ParseUncompressedPoint(pk[:]); err != nil {
		return nil, malformedPublicKey(pk[:], err.Error())
	}
	out, err := marshalPublicKey(pk[:])
	if err != nil {
		return nil, malformedPublicKey(pk[:], err.Error())
	}
	return out, nil
}

func marshalPublicKey(point []byte) ([]byte, error) {
	return der.MarshalSubjectPublicKeyInfo(curve.OIDPublicKeyECDSA, curve.OIDNamedCurveSecp256k1, point)
}

// parsePublicKeyBytes decodes pk into the primitive's point representation.
func parsePublicKeyBytes(g *curve.Group, pk PublicKeyBytes) (*secp256k1.PublicKey, error) {
	p, err := g.ParseUncompressedPoint(pk[:])
	if err != nil {
		return nil, malformedPublicKey(pk[:], err.Error())
	}
	return p, nil
}

func newGroup() (*curve.Group, error) {
	g, err := curve.NewGroup(curve.Secp256k1)
	if err != nil {
		return nil, basicsig.NewError(basicsig.ErrAlgorithmNotSupported, Algorithm, nil, nil,
			"unable to create EC group: "+err.Error())
	}
	return g, nil
}

func malformedPublicKey(key []byte, reason string) error {
	return basicsig.NewError(basicsig.ErrMalformedPublicKey, Algorithm, key, nil, reason)
}
