package ecdsasecp256k1_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
	"github.com/coinbase/basicsig-go/pkg/basicsig/ecdsasecp256k1"
)

func TestPackSignaturePadding(t *testing.T) {
	r := big.NewInt(0x0102)
	s := new(big.Int).SetBytes(mustHex(t, gxHex))

	sig, err := ecdsasecp256k1.PackSignature(r, s)
	require.NoError(t, err)
	want := make([]byte, 30)
	want = append(want, 0x01, 0x02)
	want = append(want, mustHex(t, gxHex)...)
	assert.Equal(t, want, sig[:])

	gotR, gotS, err := ecdsasecp256k1.UnpackSignature(sig[:])
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(gotR))
	assert.Zero(t, s.Cmp(gotS))
}

func TestPackSignatureTooLong(t *testing.T) {
	long := new(big.Int).Lsh(big.NewInt(1), 256)

	_, err := ecdsasecp256k1.PackSignature(long, big.NewInt(1))
	cerr := requireKind(t, err, basicsig.ErrMalformedSignature)
	assert.Equal(t, "r or s is too long", cerr.Reason)
	assert.Len(t, cerr.SigBytes, 34)

	_, err = ecdsasecp256k1.PackSignature(big.NewInt(1), long)
	requireKind(t, err, basicsig.ErrMalformedSignature)

	_, err = ecdsasecp256k1.PackSignature(nil, big.NewInt(1))
	requireKind(t, err, basicsig.ErrMalformedSignature)

	_, err = ecdsasecp256k1.PackSignature(big.NewInt(-1), big.NewInt(1))
	requireKind(t, err, basicsig.ErrMalformedSignature)
}

func TestUnpackSignatureLength(t *testing.T) {
	for _, n := range []int{0, 63, 65} {
		_, _, err := ecdsasecp256k1.UnpackSignature(make([]byte, n))
		requireKind(t, err, basicsig.ErrMalformedSignature)

		_, err = ecdsasecp256k1.SignatureBytesFromSlice(make([]byte, n))
		requireKind(t, err, basicsig.ErrMalformedSignature)
	}

	_, err := ecdsasecp256k1.SignatureBytesFromSlice(make([]byte, 63))
	cerr := requireKind(t, err, basicsig.ErrMalformedSignature)
	assert.Equal(t, "expected 64 bytes, got 63", cerr.Reason)
}
