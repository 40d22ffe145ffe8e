package turnover

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"
)

const (
	// DefaultLength is the number of ciphertext bytes embedded in a receipt.
	DefaultLength = 8
	// MinLength is the minimum ciphertext length allowed by the fiscal
	// specification.
	MinLength = 5
	// MaxLength is the AES block size; ciphertext beyond one block cannot
	// exist for a single counter.
	MaxLength = aes.BlockSize
)

// encodeCounter writes the counter into the first length bytes of a fresh
// 16-byte block as a big-endian two's-complement integer. With length >= 8
// this is the plain 8-byte representation in bytes 0-7 followed by zeros;
// shorter lengths narrow the encoding and therefore the representable range.
// Only the first length bytes of the ciphertext are kept, so the counter
// must fit entirely inside them.
func encodeCounter(counter int64, length int) ([]byte, error) {
	if length < MinLength || length > MaxLength {
		return nil, fmt.Errorf("%w: got %d", ErrCounterLength, length)
	}

	block := make([]byte, aes.BlockSize)

	if length >= 8 {
		binary.BigEndian.PutUint64(block[:8], uint64(counter))

		return block, nil
	}

	low := -(int64(1) << (8*length - 1))
	high := int64(1)<<(8*length-1) - 1

	if counter < low || counter > high {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrCounterRange, counter, low, high)
	}

	v := counter
	for i := length - 1; i >= 0; i-- {
		block[i] = byte(v)
		v >>= 8
	}

	return block, nil
}

// decodeCounter sign-extends the recovered plaintext prefix to a signed
// 64-bit value. Recovered bytes beyond the eighth are trailing zeros of the
// plaintext block and carry no information.
func decodeCounter(plain []byte) int64 {
	if len(plain) >= 8 {
		return int64(binary.BigEndian.Uint64(plain[:8]))
	}

	v := int64(int8(plain[0]))
	for _, b := range plain[1:] {
		v = v<<8 | int64(b)
	}

	return v
}
