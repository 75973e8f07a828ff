package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/generator"
)

// main - prints the hash of every legal winning board, one per line, ascending.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(os.Stdout); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	writer := bufio.NewWriter(out)

	for hash, err := range generator.WinningHashes() {
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}

		if _, err = fmt.Fprintln(writer, hash); err != nil {
			return fmt.Errorf("failed to write hash: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
