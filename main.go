// rksv encrypts and decrypts the turnover counter embedded in signed fiscal
// receipts and converts ECDSA signature encodings for JWS-style verifiers.
package main

import (
	"os"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/commands"
	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
)

// version is set at build time.
var version = "dev"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
