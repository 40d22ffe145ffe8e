package turnover

import (
	"crypto/aes"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Hash enumerates the digest algorithms allowed for IV derivation. The set
// is closed and every member produces at least 16 bytes of output, so the
// fixed-size copy into the IV can never read past the digest.
type Hash byte

const (
	// HashSHA256 is the algorithm mandated by the fiscal specification.
	HashSHA256 Hash = iota
	// HashSHA512 is accepted for forward compatibility.
	HashSHA512
	// HashSHA3_256 is accepted for forward compatibility.
	HashSHA3_256
)

// ParseHash maps a configured algorithm name to its variant.
func ParseHash(name string) (Hash, error) {
	switch strings.ToUpper(name) {
	case "SHA-256", "SHA256":
		return HashSHA256, nil
	case "SHA-512", "SHA512":
		return HashSHA512, nil
	case "SHA3-256":
		return HashSHA3_256, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
}

func (h Hash) String() string {
	switch h {
	case HashSHA256:
		return "SHA-256"
	case HashSHA512:
		return "SHA-512"
	case HashSHA3_256:
		return "SHA3-256"
	default:
		return fmt.Sprintf("Hash(%d)", byte(h))
	}
}

// digest constructs a fresh hash engine scoped to a single derivation.
func (h Hash) digest() (hash.Hash, error) {
	switch h {
	case HashSHA256:
		return sha256.New(), nil
	case HashSHA512:
		return sha512.New(), nil
	case HashSHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHash, h)
	}
}

// DeriveIV computes the initialization vector for a receipt: the first
// 16 bytes of hash(cashboxID || receiptID), both identifiers UTF-8 encoded,
// cashbox identifier first.
//
// The IV is fully determined by public identifiers; it is never generated
// randomly or transmitted separately. This is sound because every receipt
// carries a unique identifier, so the same keystream block is never applied
// to two different counter values under one key.
func DeriveIV(h Hash, cashboxID, receiptID string) ([]byte, error) {
	digest, err := h.digest()
	if err != nil {
		return nil, err
	}

	digest.Write([]byte(cashboxID))
	digest.Write([]byte(receiptID))
	sum := digest.Sum(nil)

	iv := make([]byte, aes.BlockSize)
	copy(iv, sum[:aes.BlockSize])

	return iv, nil
}
