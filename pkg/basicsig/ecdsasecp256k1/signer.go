package ecdsasecp256k1

import (
	"crypto"
	"io"
)

// Signer adapts a secret key to crypto.Signer.
//
// The Signer does not own the key: it must not be used after the key is
// zeroized, and zeroizing it remains the caller's job.
type Signer struct {
	sk *SecretKeyBytes
	pk PublicKeyBytes
}

var _ crypto.Signer = (*Signer)(nil)

// NewSigner returns a Signer for sk. It fails with ErrMalformedPublicKey if
// pk cannot be decoded and ErrMalformedSecretKey if sk cannot be decoded or
// does not belong to pk.
func NewSigner(sk *SecretKeyBytes, pk PublicKeyBytes) (*Signer, error) {
	g, err := newGroup()
	if err != nil {
		return nil, err
	}
	point, err := parsePublicKeyBytes(g, pk)
	if err != nil {
		return nil, err
	}
	k, err := secretScalar(g, sk)
	if err != nil {
		return nil, err
	}
	defer k.Free()
	if !g.Matches(k, point) {
		return nil, malformedSecretKey()
	}
	return &Signer{sk: sk, pk: pk}, nil
}

// Public returns the PublicKeyBytes of the signer.
func (s *Signer) Public() crypto.PublicKey {
	return s.pk
}

// Sign signs digest and returns the packed 64-byte r || s signature, not DER.
// rand and opts are ignored: nonces are deterministic and digest is signed
// as given.
func (s *Signer) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) ([]byte, error) {
	sig, err := Sign(digest, s.sk)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}
