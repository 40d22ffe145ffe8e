package jws

import (
	"bytes"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// derSignature mirrors the DER layout so tests can build inputs the same way
// signers emit them.
type derSignature struct {
	R, S *big.Int
}

func mustDER(t *testing.T, r, s *big.Int) []byte {
	t.Helper()

	der, err := asn1.Marshal(derSignature{R: r, S: s})
	require.NoError(t, err)

	return der
}

func TestConcatenatedFromDER(t *testing.T) {
	t.Run("small components", func(t *testing.T) {
		// SEQUENCE { INTEGER 1, INTEGER 2 } built by hand.
		der := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}

		concatenated, err := ConcatenatedFromDER(der)
		require.NoError(t, err)
		require.Len(t, concatenated, SignatureLength)

		want := make([]byte, SignatureLength)
		want[31] = 0x01
		want[63] = 0x02
		assert.Equal(t, want, concatenated)
	})

	t.Run("sign padding byte is discarded", func(t *testing.T) {
		// Components with the top bit set force an ASN.1 leading zero byte;
		// the concatenated form must carry the bare 32-byte magnitudes.
		rBytes := bytes.Repeat([]byte{0x80}, 32)
		sBytes := bytes.Repeat([]byte{0xff}, 32)

		der := mustDER(t, new(big.Int).SetBytes(rBytes), new(big.Int).SetBytes(sBytes))

		concatenated, err := ConcatenatedFromDER(der)
		require.NoError(t, err)

		assert.Equal(t, rBytes, concatenated[:32])
		assert.Equal(t, sBytes, concatenated[32:])
	})

	t.Run("short components are zero padded", func(t *testing.T) {
		r, _ := new(big.Int).SetString("499602d2", 16)
		s, _ := new(big.Int).SetString("0badc0de", 16)

		concatenated, err := ConcatenatedFromDER(mustDER(t, r, s))
		require.NoError(t, err)

		assert.Equal(t, make([]byte, 28), concatenated[:28])
		assert.Equal(t, r.Bytes(), concatenated[28:32])
	})

	t.Run("third sequence element", func(t *testing.T) {
		der, err := asn1.Marshal(struct {
			R, S, T *big.Int
		}{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
		require.NoError(t, err)

		_, err = ConcatenatedFromDER(der)
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})

	t.Run("trailing bytes after sequence", func(t *testing.T) {
		der := mustDER(t, big.NewInt(1), big.NewInt(2))
		der = append(der, 0x00)

		_, err := ConcatenatedFromDER(der)
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})

	t.Run("negative component", func(t *testing.T) {
		der := mustDER(t, big.NewInt(-5), big.NewInt(2))

		_, err := ConcatenatedFromDER(der)
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})

	t.Run("component exceeding 256 bits", func(t *testing.T) {
		der := mustDER(t, new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(2))

		_, err := ConcatenatedFromDER(der)
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})

	t.Run("not a sequence", func(t *testing.T) {
		_, err := ConcatenatedFromDER([]byte{0x02, 0x01, 0x01})
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ConcatenatedFromDER(nil)
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})
}

func TestDERFromConcatenated(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		rBytes := bytes.Repeat([]byte{0x80}, 32)
		sBytes := bytes.Repeat([]byte{0x01}, 32)

		original := mustDER(t, new(big.Int).SetBytes(rBytes), new(big.Int).SetBytes(sBytes))

		concatenated, err := ConcatenatedFromDER(original)
		require.NoError(t, err)

		der, err := DERFromConcatenated(concatenated)
		require.NoError(t, err)
		assert.Equal(t, original, der)
	})

	t.Run("wrong input length", func(t *testing.T) {
		_, err := DERFromConcatenated(make([]byte, 63))
		assert.ErrorIs(t, err, ErrMalformedSignature)
	})
}
