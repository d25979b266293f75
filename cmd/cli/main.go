package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	clipboardAdapter "github.com/iho/receipts/internal/adapter/clipboard"
	"github.com/iho/receipts/internal/adapter/locator"
	fileRepo "github.com/iho/receipts/internal/adapter/repository/file"
	memoryRepo "github.com/iho/receipts/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/receipts/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/receipts/internal/adapter/repository/redis"
	"github.com/iho/receipts/internal/domain"
	"github.com/iho/receipts/internal/format"
	"github.com/iho/receipts/internal/infrastructure/config"
	"github.com/iho/receipts/internal/infrastructure/logger"
	"github.com/iho/receipts/internal/infrastructure/postgres"
	"github.com/iho/receipts/internal/infrastructure/redis"
	"github.com/iho/receipts/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "receipts",
		Short: "Single-user expense and receipt tracker",
		Long: `Track purchases, keep a running total, and share the whole list
as a URL-encoded link that another session can import.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		rmCmd(),
		clearCmd(),
		totalCmd(),
		shareCmd(),
		openCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires configuration, storage and the use cases for one command run.
type app struct {
	records *usecase.RecordUseCase
	share   *usecase.ShareUseCase
	logger  zerolog.Logger
	cleanup func()
}

// newApp builds the session. inboundURL is the address a shared link was
// opened with, empty for plain commands; startup arbitration decides
// between it and persisted state.
func newApp(ctx context.Context, inboundURL string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	storage, cleanup, err := buildStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	clock := usecase.SystemClock{}
	persister := usecase.NewPersistUseCase(storage, clock, cfg.StorageKey, log)

	var clip usecase.Clipboard
	if clipboardAdapter.Available() {
		clip = clipboardAdapter.NewSystem()
	} else {
		clip = clipboardAdapter.NewNull()
	}

	share := usecase.NewShareUseCase(persister, locator.NewStatic(inboundURL), clip, clock, cfg.ShareBaseURL, log)
	initial := share.Bootstrap(ctx)

	return &app{
		records: usecase.NewRecordUseCase(initial, persister, log),
		share:   share,
		logger:  log,
		cleanup: cleanup,
	}, nil
}

func buildStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (usecase.Storage, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case "file":
		dir := cfg.DataDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to resolve data directory: %w", err)
			}
			dir = filepath.Join(base, "receipts")
		}
		storage, err := fileRepo.NewStorage(dir)
		if err != nil {
			return nil, nil, err
		}
		return storage, noop, nil

	case "memory":
		return memoryRepo.NewStorage(), noop, nil

	case "redis":
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisRepo.NewStorage(client), func() { client.Close() }, nil

	case "postgres":
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseTimeout)
		if err != nil {
			return nil, nil, err
		}
		return postgresRepo.NewStorage(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func addCmd() *cobra.Command {
	var (
		vendor      string
		amount      string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a purchase record",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Field validation lives on this surface, not in the store.
			if vendor == "" {
				return fmt.Errorf("vendor must not be empty")
			}
			if description == "" {
				return fmt.Errorf("description must not be empty")
			}
			parsed, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			if parsed.IsNegative() {
				return fmt.Errorf("amount must not be negative")
			}
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			records := a.records.Add(ctx, domain.AddRecordInput{
				Vendor:      vendor,
				Amount:      parsed,
				Description: description,
				OccurredAt:  date,
			})

			added := records[len(records)-1]
			fmt.Printf("Added #%d %s %s\n", added.ID, added.Vendor, format.Currency(added.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "store or merchant name")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in euro, e.g. 42.50")
	cmd.Flags().StringVar(&description, "description", "", "what was bought")
	cmd.Flags().StringVar(&date, "date", "", "purchase timestamp (ISO-8601, default: now)")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records with the running total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			printRecords(a.records.List())
			fmt.Printf("Total: %s\n", format.Currency(a.records.Total()))
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete the record with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			a.records.Delete(ctx, id)
			fmt.Printf("Deleted #%d\n", id)
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			a.records.Clear(ctx)
			fmt.Println("Cleared all records")
			return nil
		},
	}
}

func totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the sum of all amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			fmt.Println(format.Currency(a.records.Total()))
			return nil
		},
	}
}

func shareCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a link encoding the whole record list",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, "")
			if err != nil {
				return err
			}
			defer a.cleanup()

			link, err := a.share.Link(a.records.List())
			if err != nil {
				return fmt.Errorf("failed to build share link: %w", err)
			}
			fmt.Println(link)

			if copyToClipboard {
				if err := a.share.CopyLink(ctx, link); err != nil {
					fmt.Println("Not copied to clipboard")
				} else {
					fmt.Println("Copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the link to the clipboard")

	return cmd
}

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Import records from a shared link",
		Long: `Import the records encoded in a shared link. The imported list replaces
the persisted one; the link's data parameter is consumed so importing is a
one-time action.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, args[0])
			if err != nil {
				return err
			}
			defer a.cleanup()

			printRecords(a.records.List())
			fmt.Printf("Total: %s\n", format.Currency(a.records.Total()))
			return nil
		},
	}
}

func printRecords(records []domain.Record) {
	if len(records) == 0 {
		fmt.Println("No records")
		return
	}

	fmt.Printf("%-4s %-13s %-20s %-40s %12s\n", "ID", "DATE", "VENDOR", "DESCRIPTION", "AMOUNT")
	for _, r := range records {
		fmt.Printf("%-4d %-13s %-20s %-40s %12s\n",
			r.ID,
			format.Date(r.OccurredAt),
			truncate(r.Vendor, 20),
			truncate(r.Description, 40),
			format.Currency(r.Amount),
		)
	}
}

// truncate shortens s to max characters, counting runes so multi-byte
// vendors and descriptions are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
