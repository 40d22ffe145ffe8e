package logic

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/Aishwariya/at-registrierkassen-mustercode/internal/config"
)

// result represents the outcome of decrypting a single receipt line.
type result struct {
	// ReceiptID of the processed line
	ReceiptID string

	// Counter recovered from the ciphertext
	Counter int64

	// Any error that occurred during processing
	Error error
}

// parseLine splits a batch input line of the form "receiptID:ciphertext",
// where the ciphertext is base64 encoded.
func parseLine(line string) (receiptID, ciphertext string, err error) {
	receiptID, ciphertext, found := strings.Cut(line, ":")
	if !found || receiptID == "" || ciphertext == "" {
		return "", "", fmt.Errorf("malformed line %q: want receiptID:ciphertext", line)
	}

	return receiptID, ciphertext, nil
}

// runBatch decrypts every receipt line in the configured input file,
// bounded-parallel, funneling outcomes through a printer goroutine.
//
//nolint:cyclop,gocognit // parallel processing pipeline with printer goroutine
func runBatch(cfg *config.Config) error {
	start := time.Now()

	turnoverKey, err := KeyMaterial(cfg)
	if err != nil {
		return err
	}

	mode, hash, err := params(cfg)
	if err != nil {
		return err
	}

	lines, err := readLines(cfg.Input)
	if err != nil {
		return err
	}

	results := make(chan result, len(lines))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var processed, errored int

	go func() {
		defer close(printed)

		for res := range results {
			if res.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", res.ReceiptID, res.Error)
			} else {
				processed++

				if !cfg.Quiet {
					fmt.Printf("%s: %d\n", res.ReceiptID, res.Counter) //nolint:forbidigo
				}
			}
		}
	}()

	for _, line := range lines {
		group.Go(func() error {
			receiptID, encoded, err := parseLine(line)
			if err != nil {
				results <- result{ReceiptID: line, Error: err}

				return err
			}

			counter, err := decryptValue(cfg.CashboxID, turnoverKey, mode, hash, receiptID, encoded)
			if err != nil {
				results <- result{ReceiptID: receiptID, Error: err}

				return err
			}

			results <- result{ReceiptID: receiptID, Counter: counter}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		printStats(processed, errored, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("decrypting batch: %w", err)
	}

	return nil
}

// readLines loads the non-empty lines of the batch input file. Lines
// starting with '#' are comments.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	return lines, nil
}

// printStats summarizes a batch run.
func printStats(processed, errored int, elapsed time.Duration) {
	fmt.Printf( //nolint:forbidigo
		"Decrypted %s receipts (%s errors) in %s\n",
		humanize.Comma(int64(processed)),
		humanize.Comma(int64(errored)),
		elapsed.Round(time.Millisecond),
	)
}
