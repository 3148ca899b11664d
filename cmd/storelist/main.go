package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/storelist"
	"github.com/fwojciec/storelist/csv"
	"github.com/fwojciec/storelist/fs"
	"github.com/fwojciec/storelist/regexp"
	storeslog "github.com/fwojciec/storelist/slog"
	"github.com/fwojciec/storelist/sqlite"
)

// usage is printed when no directory is given.
const usage = "[SAMPLE] storelist input/由利本荘市_スーパーマーケット"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when --sqlite is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// kong reports help output through Exit; parsing continues afterwards.
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("storelist"),
		kong.Description("Extract store names and addresses from saved listing pages into a CSV file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	if cli.Mode == ModeDir && cli.Path == "" {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	source, err := fs.NewSource(fs.WithEncoding(cli.Encoding))
	if err != nil {
		return fmt.Errorf("error: %s", storelist.ErrorMessage(err))
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Source:    source,
		Extractor: regexp.NewExtractor(),
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Source = storeslog.NewLoggingSource(deps.Source, logger)
		deps.Extractor = storeslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	var csvWriter storelist.StoreWriter = csv.NewWriter(cli.Output, csv.WithHeader(cli.Header))
	if logger != nil {
		csvWriter = storeslog.NewLoggingStoreWriter(csvWriter, "csv", logger)
	}
	writers := MultiWriter{csvWriter}

	if cli.SQLite != "" {
		m.DB = sqlite.NewDB(cli.SQLite)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set STORELIST_SQLITE or --sqlite to a writable path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.SQLite, err)
		}
		defer m.Close()

		var runs storelist.StoreWriter = sqlite.NewStoreService(m.DB, cli.source())
		if logger != nil {
			runs = storeslog.NewLoggingStoreWriter(runs, "sqlite", logger)
		}
		writers = append(writers, runs)
	}
	deps.Writer = writers

	cmd := &ExtractCmd{
		Path:   cli.source(),
		Mode:   cli.Mode,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}
