package config_test

import (
	"strings"
	"testing"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Key:       config.Key{String: strings.Repeat("ab", 32)},
		Mode:      "CTR",
		Hash:      "SHA-256",
		CashboxID: "CASH001",
		ReceiptID: "0001",
		Length:    8,
		Parallel:  4,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"valid", func(*config.Config) {}, true},
		{"key file instead of key", func(c *config.Config) {
			c.Key = config.Key{File: "key.txt"}
		}, true},
		{"no key source", func(c *config.Config) {
			c.Key = config.Key{}
		}, false},
		{"both key sources", func(c *config.Config) {
			c.Key.File = "key.txt"
		}, false},
		{"key not hex", func(c *config.Config) {
			c.Key.String = strings.Repeat("zz", 32)
		}, false},
		{"key too short", func(c *config.Config) {
			c.Key.String = strings.Repeat("ab", 16)
		}, false},
		{"unsupported mode", func(c *config.Config) {
			c.Mode = "CBC"
		}, false},
		{"unsupported hash", func(c *config.Config) {
			c.Hash = "MD5"
		}, false},
		{"length below minimum", func(c *config.Config) {
			c.Length = 4
		}, false},
		{"length above block size", func(c *config.Config) {
			c.Length = 17
		}, false},
		{"missing cashbox id", func(c *config.Config) {
			c.CashboxID = ""
		}, false},
		{"no workers", func(c *config.Config) {
			c.Parallel = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}

			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
