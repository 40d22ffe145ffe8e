package turnover

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// KeyLength is the required key size: the fiscal specification fixes AES-256.
const KeyLength = 32

// newBlock validates the key material and constructs a fresh AES primitive
// scoped to the current call. The primitive is never reused across calls
// with different keys or IVs.
func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIVLength, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}

// Encrypt conceals the counter under the given mode and returns the first
// length ciphertext bytes (5..16, default 8).
//
// Truncating the ciphertext is valid for all three variants because each is
// used as a stream cipher over a single block: every ciphertext byte depends
// only on key, IV and byte position, never on later bytes. Under a chaining
// mode such as CBC the truncated ciphertext could not be decrypted at all.
func Encrypt(mode Mode, key, iv []byte, counter int64, length int) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	plain, err := encodeCounter(counter, length)
	if err != nil {
		return nil, err
	}

	full := make([]byte, aes.BlockSize)
	if err := xorKeystream(mode, block, iv, full, plain, true); err != nil {
		return nil, err
	}

	return full[:length], nil
}

// Decrypt recovers the counter from a possibly truncated ciphertext.
//
// The mode is run over exactly len(ciphertext) bytes. Zero-padding the
// ciphertext to a full block before decrypting would XOR keystream into the
// padding and corrupt the low-order counter bytes; the stream-cipher
// structure of all three variants is what makes prefix decryption exact.
//
// Unlike Encrypt, which enforces the 5..16 output range, Decrypt accepts any
// 1..16 byte input: the verifier side decrypts whatever is printed on the
// receipt, and rejecting short inputs here would turn a malformed receipt
// into a hard failure instead of a recoverable wrong counter.
func Decrypt(mode Mode, key, iv, ciphertext []byte) (int64, error) {
	if len(ciphertext) == 0 || len(ciphertext) > aes.BlockSize {
		return 0, fmt.Errorf("%w: got %d", ErrCiphertextLength, len(ciphertext))
	}

	block, err := newBlock(key, iv)
	if err != nil {
		return 0, err
	}

	plain := make([]byte, len(ciphertext))
	if err := xorKeystream(mode, block, iv, plain, ciphertext, false); err != nil {
		return 0, err
	}

	return decodeCounter(plain), nil
}

// EncryptCounter derives the IV from the receipt identifiers before
// encrypting the counter.
func EncryptCounter(mode Mode, h Hash, key []byte, cashboxID, receiptID string, counter int64, length int) ([]byte, error) {
	iv, err := DeriveIV(h, cashboxID, receiptID)
	if err != nil {
		return nil, err
	}

	return Encrypt(mode, key, iv, counter, length)
}

// DecryptCounter mirrors the reference decrypt entry point: every input is
// either printed on the receipt or part of the cashbox configuration.
func DecryptCounter(mode Mode, h Hash, key []byte, cashboxID, receiptID string, ciphertext []byte) (int64, error) {
	iv, err := DeriveIV(h, cashboxID, receiptID)
	if err != nil {
		return 0, err
	}

	return Decrypt(mode, key, iv, ciphertext)
}

// xorKeystream applies the selected mode variant over src into dst, both at
// most one block long and of equal length.
func xorKeystream(mode Mode, block cipher.Block, iv, dst, src []byte, encrypting bool) error {
	switch mode {
	case ModeECB:
		// The data is not enciphered directly. The IV itself is enciphered
		// once and the result used as a one-block keystream, making this
		// equivalent to single-iteration OFB built from an ECB primitive.
		//
		// The encrypt direction is intentional on the decrypt path as well:
		// XOR is its own inverse, so the keystream block must be regenerated
		// identically, never put through a block decryption.
		ks := make([]byte, aes.BlockSize)
		block.Encrypt(ks, iv)

		for i := range src {
			dst[i] = src[i] ^ ks[i]
		}
	case ModeCFB:
		if encrypting {
			cipher.NewCFBEncrypter(block, iv).XORKeyStream(dst, src)
		} else {
			cipher.NewCFBDecrypter(block, iv).XORKeyStream(dst, src)
		}
	case ModeCTR:
		// CTR is symmetric: the same keystream is generated on both paths,
		// starting from the derived IV as initial counter block.
		cipher.NewCTR(block, iv).XORKeyStream(dst, src)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	return nil
}
