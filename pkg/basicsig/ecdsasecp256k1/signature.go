package ecdsasecp256k1

import (
	"fmt"
	"math/big"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
)

// PackSignature encodes (r, s) as a SignatureBytes. Each value is written
// right-aligned into its own FieldSize-byte half, so values with leading
// zero bits are restored to the fixed width by left zero padding.
//
// Valid signatures always fit; a value wider than FieldSize bytes (or nil or
// negative) is reported as ErrMalformedSignature.
func PackSignature(r, s *big.Int) (SignatureBytes, error) {
	var sig SignatureBytes
	if r == nil || s == nil || r.Sign() < 0 || s.Sign() < 0 {
		return sig, basicsig.NewError(basicsig.ErrMalformedSignature, Algorithm, nil, nil,
			"r and s must be non-negative integers")
	}
	rb, sb := r.Bytes(), s.Bytes()
	if len(rb) > FieldSize || len(sb) > FieldSize {
		raw := make([]byte, 0, len(rb)+len(sb))
		raw = append(append(raw, rb...), sb...)
		return sig, basicsig.NewError(basicsig.ErrMalformedSignature, Algorithm, nil, raw,
			"r or s is too long")
	}

	// Account for leading zeros.
	copy(sig[FieldSize-len(rb):FieldSize], rb)
	copy(sig[SignatureSize-len(sb):], sb)
	return sig, nil
}

// UnpackSignature splits a packed signature into r and s. It fails with
// ErrMalformedSignature unless b is exactly SignatureSize bytes long; the
// values themselves are not checked against the group order.
func UnpackSignature(b []byte) (r, s *big.Int, err error) {
	if len(b) != SignatureSize {
		return nil, nil, lengthError(b)
	}
	r = new(big.Int).SetBytes(b[:FieldSize])
	s = new(big.Int).SetBytes(b[FieldSize:])
	return r, s, nil
}

func lengthError(b []byte) error {
	return basicsig.NewError(basicsig.ErrMalformedSignature, Algorithm, nil, b,
		fmt.Sprintf("expected %d bytes, got %d", SignatureSize, len(b)))
}
