package curve

import "encoding/asn1"

// Curve represents an elliptic curve known to the signature schemes.
// This is a stable Go enum that is independent of the primitive library.
type Curve int

const (
	Unknown   Curve = iota // Unknown or unsupported curve
	Secp256k1              // SEC 2 secp256k1
)

// Object identifiers used in PKIX metadata.
var (
	// OIDPublicKeyECDSA is id-ecPublicKey from RFC 5480.
	OIDPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	// OIDNamedCurveSecp256k1 is secp256k1 from SEC 2.
	OIDNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// UncompressedPrefix is the SEC 1 marker of an uncompressed point.
const UncompressedPrefix = 0x04

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	switch c {
	case Secp256k1:
		return "secp256k1"
	default:
		return "Unknown"
	}
}

// FieldSize returns the byte length of one coordinate or scalar.
func (c Curve) FieldSize() int {
	switch c {
	case Secp256k1:
		return 32
	default:
		return 0
	}
}

// PointSize returns the byte length of an uncompressed point.
func (c Curve) PointSize() int {
	if fs := c.FieldSize(); fs > 0 {
		return 2*fs + 1
	}
	return 0
}

// OID returns the named-curve object identifier, or nil for unknown curves.
// The returned slice is a fresh copy.
func (c Curve) OID() asn1.ObjectIdentifier {
	switch c {
	case Secp256k1:
		return append(asn1.ObjectIdentifier(nil), OIDNamedCurveSecp256k1...)
	default:
		return nil
	}
}
