// Package jws converts ECDSA signature values between their ASN.1 DER
// encoding and the fixed-width concatenated form required by JWS-style
// verifiers.
package jws

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	// SignatureLength is the size of a concatenated signature: two 256-bit
	// integers, each zero-padded to 32 bytes, r first.
	SignatureLength = 64

	componentLength = SignatureLength / 2
)

// ErrMalformedSignature is returned when the input is not a DER sequence of
// exactly two non-negative integers of at most 256 bits each.
var ErrMalformedSignature = errors.New("malformed ECDSA signature")

// ConcatenatedFromDER converts a DER-encoded signature (SEQUENCE of the two
// integers r and s) to its 64-byte concatenated representation. Any ASN.1
// leading zero byte present only to mark a positive sign is discarded; each
// magnitude is right-aligned into 32 bytes with leading zero padding.
func ConcatenatedFromDER(der []byte) ([]byte, error) {
	var (
		inner cryptobyte.String
		r, s  big.Int
	)

	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, fmt.Errorf("%w: not a sequence of two integers", ErrMalformedSignature)
	}

	concatenated := make([]byte, SignatureLength)

	if err := fillComponent(concatenated[:componentLength], &r, "r"); err != nil {
		return nil, err
	}

	if err := fillComponent(concatenated[componentLength:], &s, "s"); err != nil {
		return nil, err
	}

	return concatenated, nil
}

// DERFromConcatenated is the inverse conversion, producing the minimal DER
// encoding of the two signature integers.
func DERFromConcatenated(signature []byte) ([]byte, error) {
	if len(signature) != SignatureLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedSignature, len(signature), SignatureLength)
	}

	var builder cryptobyte.Builder

	builder.AddASN1(asn1.SEQUENCE, func(child *cryptobyte.Builder) {
		child.AddASN1BigInt(new(big.Int).SetBytes(signature[:componentLength]))
		child.AddASN1BigInt(new(big.Int).SetBytes(signature[componentLength:]))
	})

	der, err := builder.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding signature: %w", err)
	}

	return der, nil
}

// fillComponent right-aligns a signature integer into dst.
func fillComponent(dst []byte, v *big.Int, name string) error {
	if v.Sign() < 0 {
		return fmt.Errorf("%w: %s is negative", ErrMalformedSignature, name)
	}

	if v.BitLen() > componentLength*8 {
		return fmt.Errorf("%w: %s exceeds %d bits", ErrMalformedSignature, name, componentLength*8)
	}

	v.FillBytes(dst)

	return nil
}
