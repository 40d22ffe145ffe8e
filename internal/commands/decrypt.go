package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [ciphertexts...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt base64 turnover counter ciphertexts",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(_ *cobra.Command, args []string) error {
			if cfg.Input == "" && len(args) == 0 {
				return errors.New("provide ciphertexts or --input")
			}

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunDecrypt(cfg, args)
		},
	}

	cmd.Flags().StringVarP(&cfg.Input, "input", "i", "", "File with one receiptID:ciphertext pair per line")
	cmd.Flags().BoolVar(&cfg.Stats, "stats", false, "Print statistics after batch decryption")

	return cmd
}
