package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/batch"
	"github.com/fwojciec/schemagen/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config

	// Generator is wired for the breadcrumb and article commands.
	Generator *batch.Generator

	// Records is nil when history is disabled.
	Records   schemagen.RecordService
	Exporter  schemagen.Exporter
	Validator schemagen.Validator

	// NewURLSource builds a sitemap source applying filter.
	NewURLSource func(filter *schemagen.URLFilter) schemagen.URLSource

	// NewStore builds the file store behind --out.
	NewStore func(dir, baseURL string) schemagen.RecordStore

	// Create opens the file behind --xlsx.
	Create func(path string) (io.WriteCloser, error)

	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log fetches and history writes to stderr"`
	Config  string `env:"SCHEMAGEN_CONFIG" help:"Path to YAML configuration file"`
	DB      string `env:"SCHEMAGEN_DB" help:"Path to history database"`

	Breadcrumb BreadcrumbCmd `cmd:"" help:"Generate BreadcrumbList markup from page URLs"`
	Article    ArticleCmd    `cmd:"" help:"Generate Article markup from page metadata"`
	History    HistoryCmd    `cmd:"" help:"List previously generated markup"`
	Clear      ClearCmd      `cmd:"" help:"Delete generation history"`
}

// InputFlags select the URLs to process and where results go.
type InputFlags struct {
	URLs      []string `arg:"" optional:"" name:"url" help:"Page URLs"`
	File      string   `short:"f" help:"Read URLs from file, one per line ('-' for stdin)"`
	Sitemap   string   `short:"s" help:"Discover URLs from the site's sitemap"`
	Filter    []string `short:"F" help:"Keep only sitemap URLs matching regex (repeatable)"`
	Exclude   []string `short:"x" help:"Drop sitemap URLs matching regex (repeatable)"`
	Out       string   `short:"o" type:"path" help:"Write one markup file per URL to this directory"`
	XLSX      string   `name:"xlsx" type:"path" help:"Export generated markup to an Excel workbook"`
	NoHistory bool     `help:"Do not record generated markup in the history database"`
	Validate  bool     `help:"Check generated JSON-LD structure before output"`
}

// BreadcrumbCmd is the "breadcrumb" subcommand.
type BreadcrumbCmd struct {
	InputFlags `embed:""`

	BaseURL   string `name:"base-url" help:"Site root used for the Home item (default from config)"`
	Separator string `help:"Path segment separator (default from config)"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	InputFlags `embed:""`

	Browser     bool   `short:"b" help:"Render pages in headless Chrome before reading metadata"`
	Extractor   string `short:"e" enum:"goquery,trafilatura,readability" default:"goquery" help:"Metadata extractor (goquery, trafilatura, readability)"`
	Concurrency int    `short:"c" help:"Concurrent fetch limit (default from config)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Kind  string `short:"k" help:"Only show records of this kind"`
	URL   string `short:"u" help:"Only show records for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum records to show"`
	Full  bool   `help:"Print markup of each record"`
	XLSX  string `name:"xlsx" type:"path" help:"Export the listed records to an Excel workbook (requires --kind)"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Kind  string `short:"k" help:"Only delete records of this kind"`
	Force bool   `help:"Confirm deletion"`
}
