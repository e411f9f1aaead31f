package main

import (
	"fmt"

	"github.com/fwojciec/schemagen"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := schemagen.RecordFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := schemagen.Kind(c.Kind)
		if err := kind.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", schemagen.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	if c.XLSX != "" && filter.Kind == nil {
		fmt.Fprintln(deps.Stderr, "error: --xlsx requires --kind")
		return schemagen.Errorf(schemagen.EINVALID, "--xlsx requires --kind")
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No history found. Use 'schemagen breadcrumb' or 'schemagen article' to generate markup.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s  %s\n",
			rec.GeneratedAt.Local().Format("2006-01-02 15:04:05"), rec.Kind, rec.SourceURL, rec.MarkupHash)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "%s\n\n", rec.Markup)
		}
	}

	if c.XLSX != "" {
		if err := exportRecords(deps, c.XLSX, *filter.Kind, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: exporting %s: %v\n", c.XLSX, err)
			return err
		}
	}

	return nil
}

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return schemagen.Errorf(schemagen.EINVALID, "use --force to confirm deletion")
	}

	var filter schemagen.RecordFilter
	if c.Kind != "" {
		kind := schemagen.Kind(c.Kind)
		if err := kind.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", schemagen.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}

	n, err := deps.Records.DeleteRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d records\n", n)
	return nil
}
