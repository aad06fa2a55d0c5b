package ecdsasecp256k1_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
	"github.com/coinbase/basicsig-go/pkg/basicsig/ecdsasecp256k1"
	"github.com/coinbase/basicsig-go/pkg/basicsig/internal/testkeys"
)

const (
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

	generatorHex = "04" + gxHex + gyHex

	// SubjectPublicKeyInfo header for id-ecPublicKey / secp256k1 with a
	// 65-byte bit string.
	spkiPrefixHex = "3056301006072a8648ce3d020106052b8104000a034200"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func generator(t *testing.T) ecdsasecp256k1.PublicKeyBytes {
	t.Helper()
	pk, err := ecdsasecp256k1.PublicKeyBytesFromSlice(mustHex(t, generatorHex))
	require.NoError(t, err)
	return pk
}

// newKey returns a fresh key pair; the secret key is zeroized when the test
// ends.
func newKey(t *testing.T) (*ecdsasecp256k1.SecretKeyBytes, ecdsasecp256k1.PublicKeyBytes, *testkeys.Keypair) {
	t.Helper()
	kp := testkeys.New(t)
	pk := ecdsasecp256k1.PublicKeyBytes(kp.Public)
	sk, err := ecdsasecp256k1.SecretKeyFromComponents(kp.Scalar, pk)
	require.NoError(t, err)
	t.Cleanup(sk.Zeroize)
	return sk, pk, kp
}

func requireKind(t *testing.T, err error, kind basicsig.ErrorKind) *basicsig.CryptoError {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var cerr *basicsig.CryptoError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, basicsig.EcdsaSecp256k1, cerr.Algorithm)
	return cerr
}
