package commands

import (
	"github.com/spf13/cobra"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/logic"
)

// NewConvertCommand creates a new cobra command for the convert subcommand.
func NewConvertCommand() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "convert [flags] signature",
		Short: "Convert a base64 DER signature to its concatenated (JWS) form",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunConvert(args[0], reverse)
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "Convert from concatenated form back to DER")

	return cmd
}
