// Package logic implements the command entry points on top of the turnover
// cipher and signature conversion primitives.
package logic

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/pkg/jws"
	"github.com/Aishwariya/at-registrierkassen-mustercode/pkg/turnover"
)

var errReceiptID = errors.New("receipt-id is required")

// KeyMaterial resolves the turnover key from the configuration.
func KeyMaterial(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Key.String != "":
		return key.FromHex(cfg.Key.String)
	case cfg.Key.File != "":
		raw, err := os.ReadFile(cfg.Key.File)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		return key.FromHex(strings.TrimSpace(string(raw)))
	default:
		return nil, errors.New("no key provided")
	}
}

// params resolves the closed algorithm enumerations out of the string
// configuration. Validation has already vetted the names.
func params(cfg *config.Config) (turnover.Mode, turnover.Hash, error) {
	mode, err := turnover.ParseMode(cfg.Mode)
	if err != nil {
		return 0, 0, err
	}

	hash, err := turnover.ParseHash(cfg.Hash)
	if err != nil {
		return 0, 0, err
	}

	return mode, hash, nil
}

// RunEncrypt encrypts a single counter value and prints the base64
// ciphertext in its receipt transport form.
func RunEncrypt(cfg *config.Config, counterArg string) error {
	if cfg.ReceiptID == "" {
		return errReceiptID
	}

	counter, err := strconv.ParseInt(counterArg, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing counter: %w", err)
	}

	turnoverKey, err := KeyMaterial(cfg)
	if err != nil {
		return err
	}

	mode, hash, err := params(cfg)
	if err != nil {
		return err
	}

	ciphertext, err := turnover.EncryptCounter(
		mode, hash, turnoverKey, cfg.CashboxID, cfg.ReceiptID, counter, cfg.Length)
	if err != nil {
		return fmt.Errorf("encrypting counter: %w", err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(ciphertext))

	return nil
}

// RunDecrypt decrypts base64 ciphertexts given as positional arguments, or a
// whole batch file when one is configured.
func RunDecrypt(cfg *config.Config, args []string) error {
	if cfg.Input != "" {
		return runBatch(cfg)
	}

	if cfg.ReceiptID == "" {
		return errReceiptID
	}

	turnoverKey, err := KeyMaterial(cfg)
	if err != nil {
		return err
	}

	mode, hash, err := params(cfg)
	if err != nil {
		return err
	}

	for _, arg := range args {
		counter, err := decryptValue(cfg.CashboxID, turnoverKey, mode, hash, cfg.ReceiptID, arg)
		if err != nil {
			return err
		}

		fmt.Println(counter)
	}

	return nil
}

// decryptValue decodes one base64 ciphertext and recovers its counter.
func decryptValue(
	cashboxID string,
	turnoverKey []byte,
	mode turnover.Mode,
	hash turnover.Hash,
	receiptID, encoded string,
) (int64, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, fmt.Errorf("decoding ciphertext: %w", err)
	}

	counter, err := turnover.DecryptCounter(mode, hash, turnoverKey, cashboxID, receiptID, ciphertext)
	if err != nil {
		return 0, fmt.Errorf("decrypting counter: %w", err)
	}

	return counter, nil
}

// RunIV prints the derived initialization vector for the configured
// identifiers, hex encoded. Useful when checking interop against other
// implementations.
func RunIV(cfg *config.Config) error {
	if cfg.ReceiptID == "" {
		return errReceiptID
	}

	_, hash, err := params(cfg)
	if err != nil {
		return err
	}

	iv, err := turnover.DeriveIV(hash, cfg.CashboxID, cfg.ReceiptID)
	if err != nil {
		return fmt.Errorf("deriving IV: %w", err)
	}

	fmt.Println(hex.EncodeToString(iv))

	return nil
}

// RunConvert converts a base64 DER signature to its base64 concatenated form
// (or back, when reverse is set).
func RunConvert(encoded string, reverse bool) error {
	input, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decoding signature: %w", err)
	}

	var output []byte

	if reverse {
		output, err = jws.DERFromConcatenated(input)
	} else {
		output, err = jws.ConcatenatedFromDER(input)
	}

	if err != nil {
		return fmt.Errorf("converting signature: %w", err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(output))

	return nil
}
