package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/batch"
	"github.com/fwojciec/schemagen/config"
	"github.com/fwojciec/schemagen/fs"
	"github.com/fwojciec/schemagen/goquery"
	schemahttp "github.com/fwojciec/schemagen/http"
	"github.com/fwojciec/schemagen/jsonschema"
	"github.com/fwojciec/schemagen/readability"
	"github.com/fwojciec/schemagen/rod"
	schemaslog "github.com/fwojciec/schemagen/slog"
	"github.com/fwojciec/schemagen/sqlite"
	"github.com/fwojciec/schemagen/trafilatura"
	"github.com/fwojciec/schemagen/xlsx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and configuration paths used when the CLI does not set them.
	DBPath     string
	ConfigPath string

	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	dir := defaultDir()
	return &Main{
		DBPath:     filepath.Join(dir, "history.db"),
		ConfigPath: filepath.Join(dir, "config.yaml"),
		Stdin:      os.Stdin,
	}
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
	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    m.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Exporter: xlsx.NewExporter(),
		NewStore: func(dir, baseURL string) schemagen.RecordStore {
			return fs.NewStore(filepath.Dir(dir), filepath.Base(dir), baseURL)
		},
		Create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
		Now: time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("schemagen"),
		kong.Description("Generate schema.org JSON-LD markup for web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'schemagen --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	configPath, allowMissing := cli.Config, false
	if configPath == "" {
		configPath, allowMissing = m.ConfigPath, true
	}
	cfg, err := config.Load(configPath, allowMissing)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCHEMAGEN_CONFIG to use a different configuration file\n")
		return fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	deps.Config = cfg

	logOutput := io.Discard
	if cli.Verbose {
		logOutput = stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))
	deps.Logger = logger

	deps.NewURLSource = func(filter *schemagen.URLFilter) schemagen.URLSource {
		src := schemahttp.NewSitemapSource(nil)
		src.Filter = filter
		return schemaslog.NewLoggingURLSource(src, logger)
	}

	if needsHistory(cmd, cli) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SCHEMAGEN_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Records = schemaslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
	}

	if (cmd == "breadcrumb" && cli.Breadcrumb.Validate) || (cmd == "article" && cli.Article.Validate) {
		validator, err := jsonschema.NewValidator()
		if err != nil {
			return fmt.Errorf("failed to load schemas: %w", err)
		}
		deps.Validator = validator
	}

	switch cmd {
	case "breadcrumb":
		deps.Generator = breadcrumbGenerator(cfg, &cli.Breadcrumb)
	case "article":
		gen, closeFn, err := articleGenerator(cfg, &cli.Article, logger)
		if err != nil {
			if cli.Article.Browser {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			}
			return err
		}
		defer closeFn()
		deps.Generator = gen
	}

	return kongCtx.Run(deps)
}

func needsHistory(cmd string, cli *CLI) bool {
	switch cmd {
	case "breadcrumb":
		return !cli.Breadcrumb.NoHistory
	case "article":
		return !cli.Article.NoHistory
	default:
		return true
	}
}

func breadcrumbGenerator(cfg *config.Config, c *BreadcrumbCmd) *batch.Generator {
	builder := &schemagen.BreadcrumbBuilder{
		BaseURL:   cfg.BaseURL,
		Separator: cfg.Separator,
		Labeler:   cfg.Labeler(),
	}
	if c.BaseURL != "" {
		builder.BaseURL = c.BaseURL
	}
	if c.Separator != "" {
		builder.Separator = c.Separator
	}
	return &batch.Generator{
		Breadcrumbs: builder,
		Concurrency: cfg.Concurrency,
	}
}

func articleGenerator(cfg *config.Config, c *ArticleCmd, logger *slog.Logger) (*batch.Generator, func() error, error) {
	var fetcher schemagen.Fetcher
	if c.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = schemahttp.NewFetcher(schemahttp.WithTimeout(cfg.Timeout))
	}
	fetcher = schemaslog.NewLoggingFetcher(fetcher, logger)

	extractor, err := newExtractor(c.Extractor)
	if err != nil {
		_ = fetcher.Close()
		return nil, nil, err
	}

	metadata := &batch.PageMetadataFetcher{
		Fetcher:     fetcher,
		Extractor:   extractor,
		RateLimiter: batch.NewDomainLimiter(cfg.RateLimit),
		RetryDelays: cfg.RetryDelays,
		Log: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	}

	concurrency := cfg.Concurrency
	if c.Concurrency > 0 {
		concurrency = c.Concurrency
	}

	gen := &batch.Generator{
		Articles:    &schemagen.ArticleBuilder{Publisher: cfg.Publisher},
		Metadata:    schemaslog.NewLoggingMetadataFetcher(metadata, logger),
		Concurrency: concurrency,
	}
	return gen, fetcher.Close, nil
}

func newExtractor(name string) (schemagen.MetadataExtractor, error) {
	switch name {
	case "", "goquery":
		return goquery.NewMetadataExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	default:
		return nil, schemagen.Errorf(schemagen.EINVALID, "unknown extractor %q", name)
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".schemagen")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
