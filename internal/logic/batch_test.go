package logic

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
	"github.com/Aishwariya/at-registrierkassen-mustercode/pkg/turnover"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		receiptID  string
		ciphertext string
		wantErr    bool
	}{
		{"0001:pKv6Wi3iQVU=", "0001", "pKv6Wi3iQVU=", false},
		{"R-2015-42:AAAA", "R-2015-42", "AAAA", false},
		{"missing separator", "", "", true},
		{":AAAA", "", "", true},
		{"0001:", "", "", true},
	}

	for _, tt := range tests {
		receiptID, ciphertext, err := parseLine(tt.line)

		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLine(%q) = nil error, want error", tt.line)
			}

			continue
		}

		if err != nil {
			t.Errorf("parseLine(%q): %v", tt.line, err)

			continue
		}

		if receiptID != tt.receiptID || ciphertext != tt.ciphertext {
			t.Errorf("parseLine(%q) = (%q, %q), want (%q, %q)",
				tt.line, receiptID, ciphertext, tt.receiptID, tt.ciphertext)
		}
	}
}

func TestDecryptValue(t *testing.T) {
	key := make([]byte, turnover.KeyLength)
	for i := range key {
		key[i] = byte(i)
	}

	ciphertext, err := turnover.EncryptCounter(
		turnover.ModeCTR, turnover.HashSHA256, key, "CASH001", "0007", 4711, turnover.DefaultLength)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	encoded := base64.StdEncoding.EncodeToString(ciphertext)

	counter, err := decryptValue("CASH001", key, turnover.ModeCTR, turnover.HashSHA256, "0007", encoded)
	if err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if counter != 4711 {
		t.Errorf("counter = %d, want 4711", counter)
	}

	if _, err := decryptValue("CASH001", key, turnover.ModeCTR, turnover.HashSHA256, "0007", "not base64!"); err == nil {
		t.Error("decrypting invalid base64 succeeded")
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipts.txt")

	content := "# comment\n0001:AAAA\n\n0002:BBBB\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatalf("reading lines: %v", err)
	}

	want := []string{"0001:AAAA", "0002:BBBB"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}

	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunBatch(t *testing.T) {
	key := make([]byte, turnover.KeyLength)

	cfg := &config.Config{
		Mode:      "CTR",
		Hash:      "SHA-256",
		CashboxID: "CASH001",
		Length:    8,
		Parallel:  2,
		Quiet:     true,
	}
	cfg.Key.String = "0000000000000000000000000000000000000000000000000000000000000000"

	var lines string

	for i, receiptID := range []string{"0001", "0002", "0003"} {
		ciphertext, err := turnover.EncryptCounter(
			turnover.ModeCTR, turnover.HashSHA256, key, cfg.CashboxID, receiptID, int64(100+i), turnover.DefaultLength)
		if err != nil {
			t.Fatalf("encrypting: %v", err)
		}

		lines += receiptID + ":" + base64.StdEncoding.EncodeToString(ciphertext) + "\n"
	}

	cfg.Input = filepath.Join(t.TempDir(), "receipts.txt")
	if err := os.WriteFile(cfg.Input, []byte(lines), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	if err := runBatch(cfg); err != nil {
		t.Fatalf("running batch: %v", err)
	}

	// A malformed line must surface as an error, not be skipped.
	if err := os.WriteFile(cfg.Input, []byte(lines+"garbage line\n"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	if err := runBatch(cfg); err == nil {
		t.Error("runBatch with malformed line succeeded")
	}
}
