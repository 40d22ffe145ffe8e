package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/pkg/turnover"
)

// NewRootCommand creates the root command with flags shared by all
// subcommands.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "rksv [flags] command [flags]"
	root.Short = "Turnover counter encryption for signed fiscal receipts"
	root.Long = `Encrypts and decrypts the turnover counter concealed in signed fiscal
receipts, derives the per-receipt initialization vector, converts ECDSA
signature encodings and manages the turnover key.`

	root.PersistentFlags().StringVarP(&cfg.Key.String, "key", "k", "", "Turnover key (32 bytes, hex-encoded)")
	root.PersistentFlags().
		StringVarP(&cfg.Key.File, "key-file", "f", "", "Path to a file with the hex-encoded turnover key")
	root.PersistentFlags().StringVarP(&cfg.Mode, "mode", "m", "CTR", "Cipher mode variant (ECB, CFB or CTR)")
	root.PersistentFlags().
		StringVar(&cfg.Hash, "hash", "SHA-256", "Digest algorithm deriving the IV (SHA-256, SHA-512 or SHA3-256)")
	root.PersistentFlags().StringVarP(&cfg.CashboxID, "cashbox-id", "c", "", "Cashbox identifier")
	root.PersistentFlags().StringVarP(&cfg.ReceiptID, "receipt-id", "r", "", "Receipt identifier")
	root.PersistentFlags().
		IntVarP(&cfg.Length, "length", "l", turnover.DefaultLength, "Ciphertext bytes kept in the receipt (5-16)")
	root.PersistentFlags().
		IntVarP(&cfg.Parallel, "parallel", "j", runtime.NumCPU(), "Number of parallel workers for batch decryption")
	root.PersistentFlags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress non-error output")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewIVCommand(cfg),
		NewConvertCommand(),
		NewKeyCommand(cfg),
	)

	return root
}
