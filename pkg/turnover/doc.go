// Package turnover implements the confidentiality transform for the turnover
// counter embedded in signed fiscal receipts (RKSV Detailspezifikation
// Abs 8/9/10).
//
// The counter is encrypted with AES-256 under one of three mode variants
// (ECB used as a one-block stream cipher, CFB, CTR). The initialization
// vector is never stored or transmitted with the receipt; it is derived
// deterministically from the cashbox identifier and the receipt identifier.
// The ciphertext is truncated to a caller-chosen length (default 8 bytes,
// minimum 5) to keep receipts small.
package turnover
