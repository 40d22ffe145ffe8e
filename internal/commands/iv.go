package commands

import (
	"github.com/spf13/cobra"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/logic"
)

// NewIVCommand creates a new cobra command for the iv subcommand.
func NewIVCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "iv [flags]",
		Short: "Print the derived initialization vector, hex encoded",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.ValidateDerivation()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunIV(cfg)
		},
	}
}
