package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/engine"
)

func parseCmd() *cobra.Command {
	var (
		sender string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a single SMS or notification message",
		Long: `Parse one message body given as an argument (or piped on stdin) and
print the extracted transaction as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := messageBody(args)
			if err != nil {
				return err
			}

			observedAt := time.Now()
			if at != "" {
				observedAt, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at timestamp (use RFC3339): %w", err)
				}
			}

			registry, err := initRegistry()
			if err != nil {
				return err
			}

			eng := engine.NewTextEngine(registry)
			res := eng.Parse(cmd.Context(), body, sender, observedAt)
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "sender identity (e.g. HDFC-Bank, VM-GPAY-S)")
	cmd.Flags().StringVar(&at, "at", "", "message receive timestamp, RFC3339 (default: now)")
	return cmd
}

func receiptCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "receipt [ocr-text-file]",
		Short: "Parse OCR text from a payment-app receipt screenshot",
		Long: `Parse receipt OCR text from a file (or stdin) and print the extracted
transaction as JSON. The payment app is detected from --source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read OCR text: %w", err)
				}
				if source == "" {
					source = args[0]
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry, err := initRegistry()
			if err != nil {
				return err
			}

			eng := engine.NewReceiptEngine(registry, store)
			res := eng.Parse(cmd.Context(), string(text), source)
			return printResult(res)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "image source hint used for channel detection (e.g. a screenshot path containing 'gpay')")
	return cmd
}

func messageBody(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	body := strings.TrimSpace(string(data))
	if body == "" {
		return "", fmt.Errorf("no message body given")
	}
	return body, nil
}
