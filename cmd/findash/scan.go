package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/category"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/engine"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// dumpLine is one message from a dump file: sender, epoch-millis, body,
// tab-separated.
type dumpLine struct {
	sender     string
	body       string
	observedAt time.Time
}

func scanCmd() *cobra.Command {
	var minConfidence float64

	cmd := &cobra.Command{
		Use:   "scan <dump-file>",
		Short: "Parse a message dump and persist accepted transactions",
		Long: `Scan a tab-separated message dump (sender, epoch-millis, body per line),
parse every message, and persist parses whose confidence clears the
accept threshold. Rejected and unrecognized messages are counted but
not stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-confidence") {
				minConfidence = viper.GetFloat64("parser.min_confidence")
			}

			lines, err := readDump(args[0])
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Println("No messages in dump.")
				return nil
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
			eng := engine.NewTextEngine(registry)
			suggester := category.NewSuggester()

			bar := progressbar.NewOptions(len(lines),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Parsing messages..."),
			)

			var accepted, debits, duplicates, rejected, unmatched int
			for _, line := range lines {
				_ = bar.Add(1)

				res := eng.Parse(cmd.Context(), line.body, line.sender, line.observedAt)
				switch {
				case !res.IsFinancialTransaction:
					unmatched++
				case res.Confidence < minConfidence:
					rejected++
				default:
					cat, _, _ := suggester.Suggest(cmd.Context(), res.MerchantName, res.Description, res.DetectedChannel)
					txn := toTransaction(res, model.SourceSMS, cat)
					if err := store.Save(cmd.Context(), txn); err != nil {
						if errors.Is(err, common.ErrDuplicateEntry) {
							duplicates++
							continue
						}
						slog.Error("Failed to save transaction", "error", err)
						continue
					}
					accepted++
					if txn.Direction.IsDebit() {
						debits++
					}
				}
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			fmt.Printf("Scanned %d messages: %d accepted (%d debits, %d credits), %d duplicates, %d below threshold (%.2f), %d unrecognized\n",
				len(lines), accepted, debits, accepted-debits, duplicates, rejected, minConfidence, unmatched)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.7, "confidence accept threshold")
	return cmd
}

func readDump(path string) ([]dumpLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open dump file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var lines []dumpLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		parts := strings.SplitN(raw, "\t", 3)
		if len(parts) != 3 {
			slog.Warn("Skipping malformed dump line", "line", lineNo)
			continue
		}
		ms, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			slog.Warn("Skipping dump line with bad timestamp", "line", lineNo)
			continue
		}
		lines = append(lines, dumpLine{
			sender:     parts[0],
			observedAt: time.UnixMilli(ms),
			body:       parts[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}
	return lines, nil
}
