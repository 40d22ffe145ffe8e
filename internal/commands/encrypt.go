package commands

import (
	"github.com/spf13/cobra"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] counter",
		Aliases: []string{"enc"},
		Short:   "Encrypt a turnover counter value",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunEncrypt(cfg, args[0])
		},
	}
}
