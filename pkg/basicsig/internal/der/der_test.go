package der

import (
	"encoding/asn1"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// Generator of secp256k1, uncompressed.
	generatorHex = "04" +
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

	spkiPrefixHex = "3056301006072a8648ce3d020106052b8104000a034200"
)

var (
	oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestMarshalSubjectPublicKeyInfo(t *testing.T) {
	point := mustHex(t, generatorHex)
	got, err := MarshalSubjectPublicKeyInfo(oidECPublicKey, oidSecp256k1, point)
	require.NoError(t, err)
	assert.Equal(t, spkiPrefixHex+generatorHex, hex.EncodeToString(got))

	info, err := ParseSubjectPublicKeyInfo(got)
	require.NoError(t, err)
	assert.True(t, info.Algorithm.Equal(oidECPublicKey))
	assert.True(t, info.Parameters.Equal(oidSecp256k1))
	assert.Equal(t, point, info.PublicKey)
}

func TestParseSubjectPublicKeyInfo(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantErr    error
		wantAlg    asn1.ObjectIdentifier
		wantParams asn1.ObjectIdentifier
		wantKey    string
	}{{
		name:    "no parameters",
		in:      "300f300906072a8648ce3d0201030200ff",
		wantAlg: oidECPublicKey,
		wantKey: "ff",
	}, {
		name:    "NULL parameters",
		in:      "3013300d06092a864886f70d0101010500030200ff",
		wantAlg: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1},
		wantKey: "ff",
	}, {
		name:       "compressed point",
		in:         "3036301006072a8648ce3d020106052b8104000a032200" + "02" + generatorHex[2:66],
		wantAlg:    oidECPublicKey,
		wantParams: oidSecp256k1,
		wantKey:    "02" + generatorHex[2:66],
	}, {
		name:    "trailing data",
		in:      spkiPrefixHex + generatorHex + "00",
		wantErr: ErrTrailingData,
	}, {
		name:    "partial byte bit string",
		in:      "3016301006072a8648ce3d020106052b8104000a03020180",
		wantErr: ErrInvalidBitLen,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			info, err := ParseSubjectPublicKeyInfo(mustHex(t, test.in))
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, info.Algorithm.Equal(test.wantAlg), "algorithm %s", info.Algorithm)
			if test.wantParams == nil {
				assert.Nil(t, info.Parameters)
			} else {
				assert.True(t, info.Parameters.Equal(test.wantParams), "parameters %s", info.Parameters)
			}
			assert.Equal(t, test.wantKey, hex.EncodeToString(info.PublicKey))
		})
	}
}

func TestParseSubjectPublicKeyInfoGarbage(t *testing.T) {
	for _, in := range []string{"", "00", "30", "3000", "300302010a", spkiPrefixHex} {
		_, err := ParseSubjectPublicKeyInfo(mustHex(t, in))
		assert.Error(t, err, in)
	}
}

func TestECPrivateKeyRoundTrip(t *testing.T) {
	scalar := make([]byte, 32)
	scalar[31] = 1
	point := mustHex(t, generatorHex)

	enc, err := MarshalECPrivateKey(scalar, oidSecp256k1, point)
	require.NoError(t, err)
	want := "30740201010420" + strings.Repeat("00", 31) + "01" +
		"a00706052b8104000a" + "a144034200" + generatorHex
	assert.Equal(t, want, hex.EncodeToString(enc))

	parsed, err := ParseECPrivateKey(enc)
	require.NoError(t, err)
	assert.Equal(t, scalar, parsed.PrivateKey)
	assert.True(t, parsed.NamedCurve.Equal(oidSecp256k1))
	assert.Equal(t, point, parsed.PublicKey)
}

func TestParseECPrivateKeyOptionalFields(t *testing.T) {
	in := "30250201010420" + strings.Repeat("11", 32)
	parsed, err := ParseECPrivateKey(mustHex(t, in))
	require.NoError(t, err)
	assert.Nil(t, parsed.NamedCurve)
	assert.Nil(t, parsed.PublicKey)
	assert.Len(t, parsed.PrivateKey, 32)
}

func TestParseECPrivateKeyErrors(t *testing.T) {
	valid := "30250201010420" + strings.Repeat("11", 32)

	_, err := ParseECPrivateKey(mustHex(t, "30250201020420"+strings.Repeat("11", 32)))
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = ParseECPrivateKey(mustHex(t, valid+"00"))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = ParseECPrivateKey(nil)
	assert.Error(t, err)

	// [0] holding something other than an OID.
	_, err = ParseECPrivateKey(mustHex(t, "30290201010420"+strings.Repeat("11", 32)+"a0020500"))
	assert.Error(t, err)
}
