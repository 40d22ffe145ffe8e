// Package config defines the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Key holds the two ways of supplying the turnover key. They are mutually
// exclusive; the key itself is hex encoded (32 bytes = 64 characters).
type Key struct {
	String string `validate:"omitempty,hexadecimal,len=64"`
	File   string
}

// Config holds all runtime options for the rksv tool.
type Config struct {
	// Key material for the counter cipher
	Key Key

	// Mode is the cipher mode variant concealing the counter (ECB, CFB or CTR)
	Mode string `validate:"required,ciphermode"`

	// Hash is the digest algorithm used to derive the IV
	Hash string `validate:"required,hashalg"`

	// CashboxID feeds IV derivation together with ReceiptID
	CashboxID string

	// ReceiptID identifies the receipt; unique per receipt
	ReceiptID string

	// Length is the number of ciphertext bytes kept in the receipt
	Length int `validate:"min=5,max=16"`

	// Input is an optional file with one receiptID:ciphertext pair per line
	// for batch decryption
	Input string

	// Parallel bounds concurrent batch workers
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool

	// Stats prints processing statistics after batch decryption
	Stats bool
}

var (
	errKeySource = errors.New("exactly one of key or key-file must be provided")
	errCashboxID = errors.New("cashbox-id is required")
)

// Validate validates the configuration against the struct tags and checks
// that exactly one key source is set. Used by commands that touch the key.
func (c Config) Validate() error {
	if err := c.ValidateDerivation(); err != nil {
		return err
	}

	if (c.Key.String == "") == (c.Key.File == "") {
		return errKeySource
	}

	return nil
}

// ValidateDerivation validates everything except the key material. Used by
// commands that only derive IVs.
func (c Config) ValidateDerivation() error {
	validate := validator.New()

	if err := registerAlgorithms(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.CashboxID == "" {
		return errCashboxID
	}

	return nil
}
