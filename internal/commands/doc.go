// Package commands provides the command-line interface for the rksv tool.
//
// It implements commands for:
//   - encrypting and decrypting turnover counters
//   - deriving per-receipt initialization vectors
//   - converting ECDSA signature encodings
//   - managing the turnover key
//
// The package handles command-line parsing and configuration validation
// through cobra.
package commands
