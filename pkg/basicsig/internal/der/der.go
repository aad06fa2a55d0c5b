package der

import (
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ecPrivKeyVersion is ecPrivkeyVer1 from RFC 5915.
const ecPrivKeyVersion = 1

// ecPrivateKeyCap bounds the encoding of an ECPrivateKey for curves up to 256
// bits. Builders are created with this capacity so that appends never
// reallocate and leave stale copies of the scalar behind.
const ecPrivateKeyCap = 256

var (
	tagParameters = cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()
	tagPublicKey  = cryptobyte_asn1.Tag(1).ContextSpecific().Constructed()
)

var (
	ErrTrailingData   = errors.New("der: trailing data")
	ErrInvalidBitLen  = errors.New("der: bit string is not a whole number of bytes")
	ErrInvalidVersion = errors.New("der: unsupported ECPrivateKey version")
)

// SubjectPublicKeyInfo is the decoded form of a PKIX SubjectPublicKeyInfo.
// Parameters is nil when the algorithm parameters are absent or are not an
// OBJECT IDENTIFIER (for EC keys, anything but a named curve).
type SubjectPublicKeyInfo struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
	PublicKey  []byte
}

// ParseSubjectPublicKeyInfo decodes a DER SubjectPublicKeyInfo. Any
// algorithm is accepted; trailing bytes after the structure are rejected.
func ParseSubjectPublicKeyInfo(der []byte) (*SubjectPublicKeyInfo, error) {
	input := cryptobyte.String(der)
	var spki, algID cryptobyte.String
	if !input.ReadASN1(&spki, cryptobyte_asn1.SEQUENCE) {
		return nil, errors.New("der: malformed SubjectPublicKeyInfo")
	}
	if !input.Empty() {
		return nil, ErrTrailingData
	}
	if !spki.ReadASN1(&algID, cryptobyte_asn1.SEQUENCE) {
		return nil, errors.New("der: malformed AlgorithmIdentifier")
	}

	out := &SubjectPublicKeyInfo{}
	if !algID.ReadASN1ObjectIdentifier(&out.Algorithm) {
		return nil, errors.New("der: malformed algorithm OID")
	}
	if !algID.Empty() {
		if algID.PeekASN1Tag(cryptobyte_asn1.OBJECT_IDENTIFIER) {
			if !algID.ReadASN1ObjectIdentifier(&out.Parameters) {
				return nil, errors.New("der: malformed parameter OID")
			}
		} else {
			var params cryptobyte.String
			var tag cryptobyte_asn1.Tag
			if !algID.ReadAnyASN1Element(&params, &tag) {
				return nil, errors.New("der: malformed algorithm parameters")
			}
		}
		if !algID.Empty() {
			return nil, fmt.Errorf("AlgorithmIdentifier: %w", ErrTrailingData)
		}
	}

	var bits asn1.BitString
	if !spki.ReadASN1BitString(&bits) {
		return nil, errors.New("der: malformed subjectPublicKey")
	}
	if bits.BitLength%8 != 0 {
		return nil, ErrInvalidBitLen
	}
	if !spki.Empty() {
		return nil, fmt.Errorf("SubjectPublicKeyInfo: %w", ErrTrailingData)
	}
	out.PublicKey = bits.Bytes
	return out, nil
}

// MarshalSubjectPublicKeyInfo encodes a SubjectPublicKeyInfo whose algorithm
// parameters are a single OID.
func MarshalSubjectPublicKeyInfo(alg, param asn1.ObjectIdentifier, publicKey []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(alg)
			b.AddASN1ObjectIdentifier(param)
		})
		b.AddASN1BitString(publicKey)
	})
	return b.Bytes()
}

// ECPrivateKey is the decoded form of an RFC 5915 ECPrivateKey.
//
// PrivateKey aliases the input of ParseECPrivateKey: it is secret, valid only
// as long as that input and must not be retained.
type ECPrivateKey struct {
	PrivateKey []byte
	NamedCurve asn1.ObjectIdentifier
	PublicKey  []byte
}

// ParseECPrivateKey decodes a DER ECPrivateKey. Version must be 1; the
// optional curve and public key fields are returned when present.
func ParseECPrivateKey(der []byte) (*ECPrivateKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return nil, errors.New("der: malformed ECPrivateKey")
	}
	if !input.Empty() {
		return nil, ErrTrailingData
	}

	var version int
	if !seq.ReadASN1Integer(&version) {
		return nil, errors.New("der: malformed ECPrivateKey version")
	}
	if version != ecPrivKeyVersion {
		return nil, ErrInvalidVersion
	}

	out := &ECPrivateKey{}
	var priv cryptobyte.String
	if !seq.ReadASN1(&priv, cryptobyte_asn1.OCTET_STRING) {
		return nil, errors.New("der: malformed privateKey")
	}
	out.PrivateKey = priv

	var params cryptobyte.String
	var hasParams bool
	if !seq.ReadOptionalASN1(&params, &hasParams, tagParameters) {
		return nil, errors.New("der: malformed parameters")
	}
	if hasParams {
		if !params.ReadASN1ObjectIdentifier(&out.NamedCurve) || !params.Empty() {
			return nil, errors.New("der: parameters are not a named curve")
		}
	}

	var pub cryptobyte.String
	var hasPub bool
	if !seq.ReadOptionalASN1(&pub, &hasPub, tagPublicKey) {
		return nil, errors.New("der: malformed publicKey")
	}
	if hasPub {
		var bits asn1.BitString
		if !pub.ReadASN1BitString(&bits) || !pub.Empty() {
			return nil, errors.New("der: malformed publicKey bit string")
		}
		if bits.BitLength%8 != 0 {
			return nil, ErrInvalidBitLen
		}
		out.PublicKey = bits.Bytes
	}

	if !seq.Empty() {
		return nil, fmt.Errorf("ECPrivateKey: %w", ErrTrailingData)
	}
	return out, nil
}

// MarshalECPrivateKey encodes an ECPrivateKey carrying the scalar, the named
// curve and the public point. The result is secret; the caller owns it and
// must wipe it.
func MarshalECPrivateKey(scalar []byte, curve asn1.ObjectIdentifier, publicKey []byte) ([]byte, error) {
	b := cryptobyte.NewBuilder(make([]byte, 0, ecPrivateKeyCap))
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(ecPrivKeyVersion)
		b.AddASN1OctetString(scalar)
		b.AddASN1(tagParameters, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(curve)
		})
		b.AddASN1(tagPublicKey, func(b *cryptobyte.Builder) {
			b.AddASN1BitString(publicKey)
		})
	})
	return b.Bytes()
}
