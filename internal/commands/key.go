package commands

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/fileutil"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/keystore"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/logic"
)

// NewKeyCommand groups the key management subcommands.
func NewKeyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the turnover key",
	}

	cmd.AddCommand(
		newKeyGenerateCommand(),
		newKeyProtectCommand(cfg),
		newKeyRevealCommand(),
	)

	return cmd
}

// newKeyGenerateCommand generates a fresh turnover key. In a real cash box
// this happens once during the init process; the key then lives in a secure
// area.
func newKeyGenerateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new turnover key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			raw := make([]byte, keystore.TurnoverKeySize)
			if _, err := rand.Read(raw); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			encoded := hex.EncodeToString(raw)

			if output != "" {
				const ownerReadWrite = 0o600

				return fileutil.WriteAtomic(output, []byte(encoded+"\n"), ownerReadWrite)
			}

			fmt.Println(encoded)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the key to a file instead of stdout")

	return cmd
}

// newKeyProtectCommand wraps the configured turnover key under a
// key-encryption key for storage at rest.
func newKeyProtectCommand(cfg *config.Config) *cobra.Command {
	var wrappingKey string

	cmd := &cobra.Command{
		Use:   "protect [flags]",
		Short: "Wrap the turnover key for storage at rest",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			kek, err := key.FromHex(wrappingKey)
			if err != nil {
				return fmt.Errorf("reading wrapping key: %w", err)
			}

			turnoverKey, err := logic.KeyMaterial(cfg)
			if err != nil {
				return err
			}

			blob, err := keystore.Wrap(kek, turnoverKey)
			if err != nil {
				return err
			}

			fmt.Println(base64.StdEncoding.EncodeToString(blob))

			return nil
		},
	}

	cmd.Flags().
		StringVarP(&wrappingKey, "wrapping-key", "w", "", "Key-encryption key (64 bytes, hex-encoded)")
	_ = cmd.MarkFlagRequired("wrapping-key")

	return cmd
}

// newKeyRevealCommand unwraps a protected turnover key blob.
func newKeyRevealCommand() *cobra.Command {
	var wrappingKey string

	cmd := &cobra.Command{
		Use:   "reveal [flags] blob",
		Short: "Unwrap a protected turnover key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kek, err := key.FromHex(wrappingKey)
			if err != nil {
				return fmt.Errorf("reading wrapping key: %w", err)
			}

			blob, err := base64.StdEncoding.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decoding blob: %w", err)
			}

			turnoverKey, err := keystore.Unwrap(kek, blob)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(turnoverKey))

			return nil
		},
	}

	cmd.Flags().
		StringVarP(&wrappingKey, "wrapping-key", "w", "", "Key-encryption key (64 bytes, hex-encoded)")
	_ = cmd.MarkFlagRequired("wrapping-key")

	return cmd
}
