package basicsig

import "encoding/asn1"

// PkixAlgorithmIdentifier is the AlgorithmIdentifier of a PKIX
// SubjectPublicKeyInfo: an algorithm OID and, for schemes that need one, an
// OID parameter such as a named curve.
type PkixAlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

// NewPkixAlgorithmIdentifierWithOIDParam returns an identifier whose parameter
// is itself an OID. Both OIDs are copied.
func NewPkixAlgorithmIdentifierWithOIDParam(alg, param asn1.ObjectIdentifier) PkixAlgorithmIdentifier {
	return PkixAlgorithmIdentifier{
		Algorithm:  append(asn1.ObjectIdentifier(nil), alg...),
		Parameters: append(asn1.ObjectIdentifier(nil), param...),
	}
}

// Equal reports whether both OIDs match.
func (a PkixAlgorithmIdentifier) Equal(other PkixAlgorithmIdentifier) bool {
	return a.Algorithm.Equal(other.Algorithm) && a.Parameters.Equal(other.Parameters)
}

// String returns the dotted OIDs, e.g. "1.2.840.10045.2.1 (1.3.132.0.10)".
func (a PkixAlgorithmIdentifier) String() string {
	if len(a.Parameters) == 0 {
		return a.Algorithm.String()
	}
	return a.Algorithm.String() + " (" + a.Parameters.String() + ")"
}
