package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/schemagen"
)

// Run executes the breadcrumb command.
// The generator's builder already carries the --base-url and --separator
// overrides.
func (c *BreadcrumbCmd) Run(deps *Dependencies) error {
	return generate(deps, schemagen.KindBreadcrumb, &c.InputFlags, deps.Generator.Breadcrumbs.BaseURL)
}

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	return generate(deps, schemagen.KindArticle, &c.InputFlags, deps.Config.BaseURL)
}

// generate runs one batch and writes its results to every requested output.
func generate(deps *Dependencies, kind schemagen.Kind, in *InputFlags, baseURL string) error {
	urls, err := collectURLs(deps, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	gen := *deps.Generator
	if in.Validate {
		gen.Validator = deps.Validator
	}

	results, err := gen.Generate(deps.Ctx, kind, urls, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	var store schemagen.RecordStore
	if in.Out != "" {
		store = deps.NewStore(in.Out, baseURL)
	}

	var records []*schemagen.Record
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(deps.Stderr, "error for %s: %s\n", res.URL, errorText(res.Err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "%d. URL: %s\n%s\n\n", res.Position+1, res.URL, res.Markup)

		rec := schemagen.NewRecord(res)
		records = append(records, rec)

		if deps.Records != nil && !in.NoHistory {
			if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "warning: history not saved for %s: %s\n", res.URL, errorText(err))
			}
		}
		if store != nil {
			if err := store.Save(deps.Ctx, rec); err != nil {
				_ = store.Abort()
				fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", in.Out, err)
				return err
			}
		}
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", in.Out, err)
			return err
		}
	}

	if in.XLSX != "" {
		if err := exportRecords(deps, in.XLSX, kind, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: exporting %s: %v\n", in.XLSX, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Generated %d of %d schemas\n", len(records), len(results))
	if len(records) == 0 {
		return fmt.Errorf("all %d URLs failed", len(results))
	}
	return nil
}

// collectURLs gathers URLs from arguments, the --file list, and the
// sitemap, in that order.
func collectURLs(deps *Dependencies, in *InputFlags) ([]string, error) {
	urls := append([]string(nil), in.URLs...)

	if in.File != "" {
		list, err := readURLFile(deps, in.File)
		if err != nil {
			return nil, err
		}
		urls = append(urls, list...)
	}

	if in.Sitemap != "" {
		filter, err := schemagen.CompileURLFilter(in.Filter, in.Exclude)
		if err != nil {
			return nil, err
		}
		discovered, err := deps.NewURLSource(filter).Discover(deps.Ctx, in.Sitemap)
		if err != nil {
			return nil, err
		}
		urls = append(urls, discovered...)
	}

	return urls, nil
}

func readURLFile(deps *Dependencies, path string) ([]string, error) {
	if path == "-" {
		return schemagen.ReadURLs(deps.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EINVALID, "cannot read URL list: %v", err)
	}
	defer f.Close()
	return schemagen.ReadURLs(f)
}

func exportRecords(deps *Dependencies, path string, kind schemagen.Kind, records []*schemagen.Record) (err error) {
	w, err := deps.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return deps.Exporter.Export(w, kind, records)
}

func progressPrinter(deps *Dependencies) schemagen.ProgressFunc {
	if deps.Logger == nil {
		return nil
	}
	return func(p schemagen.Progress) {
		deps.Logger.Info("progress",
			"url", p.URL,
			"completed", p.Completed,
			"total", p.Total,
			"err", p.Error,
		)
	}
}

// errorText returns the message of application errors and the full text
// of anything else, such as context cancellation.
func errorText(err error) string {
	if schemagen.ErrorCode(err) == schemagen.EINTERNAL {
		return err.Error()
	}
	return schemagen.ErrorMessage(err)
}
