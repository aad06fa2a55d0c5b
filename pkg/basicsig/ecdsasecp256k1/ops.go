package ecdsasecp256k1

import (
	"github.com/coinbase/basicsig-go/pkg/basicsig"
)

// Sign signs msg with sk and returns the packed r || s signature.
//
// msg is used directly as the ECDSA message representative; callers sign a
// digest by passing the digest. Only the leftmost FieldSize bytes of longer
// inputs contribute. The nonce is derived deterministically (RFC 6979), so
// signing the same message with the same key yields the same signature.
//
// Errors:
//   - ErrAlgorithmNotSupported if the curve group cannot be constructed
//   - ErrMalformedSecretKey if sk cannot be decoded (the cause is withheld)
//   - ErrInvalidArgument if the signing primitive fails
//   - ErrMalformedSignature if the primitive returns an oversized component
func Sign(msg []byte, sk *SecretKeyBytes) (SignatureBytes, error) {
	var sig SignatureBytes
	g, err := newGroup()
	if err != nil {
		return sig, err
	}
	k, err := secretScalar(g, sk)
	if err != nil {
		return sig, err
	}
	defer k.Free()

	r, s, err := g.Sign(k, msg)
	if err != nil {
		return sig, basicsig.NewError(basicsig.ErrInvalidArgument, Algorithm, nil, nil, err.Error())
	}
	return PackSignature(r, s)
}

// Verify checks that sig is a valid signature of msg under pk. It returns nil
// on success.
//
// pk must be an uncompressed point on the curve. A signature whose r or s is
// outside [1, N-1] and one that is well formed but invalid both fail with
// ErrSignatureVerification; the latter carries the reason
// "verification failed".
//
// Errors:
//   - ErrAlgorithmNotSupported if the curve group cannot be constructed
//   - ErrMalformedPublicKey if pk cannot be decoded
//   - ErrSignatureVerification if the signature does not verify
func Verify(sig SignatureBytes, msg []byte, pk PublicKeyBytes) error {
	r, s, err := UnpackSignature(sig[:])
	if err != nil {
		return err
	}
	g, err := newGroup()
	if err != nil {
		return err
	}
	point, err := parsePublicKeyBytes(g, pk)
	if err != nil {
		return err
	}

	ok, err := g.Verify(r, s, msg, point)
	if err != nil {
		return verificationError(sig, err.Error())
	}
	if !ok {
		return verificationError(sig, "verification failed")
	}
	return nil
}

func verificationError(sig SignatureBytes, reason string) error {
	return basicsig.NewError(basicsig.ErrSignatureVerification, Algorithm, nil, sig[:], reason)
}
