// Package xlsx exports generated records as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"

	"github.com/fwojciec/schemagen"
	"github.com/xuri/excelize/v2"
)

// TimestampLayout formats the Generated Timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// Sheet names per kind.
const (
	BreadcrumbSheet = "Breadcrumb Schemas"
	ArticleSheet    = "Article Schemas"
)

var _ schemagen.Exporter = (*Exporter)(nil)

// Exporter writes one sheet of records per workbook.
type Exporter struct{}

// NewExporter returns an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes records of kind as a workbook with a header row.
// Breadcrumb sheets have URL and schema columns; article sheets add title,
// image, and generation time.
func (e *Exporter) Export(w io.Writer, kind schemagen.Kind, records []*schemagen.Record) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, header := layout(kind)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := values(kind, rec)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func layout(kind schemagen.Kind) (string, []any) {
	if kind == schemagen.KindArticle {
		return ArticleSheet, []any{"URL", "Title", "Image", "Generated Timestamp", "Article Schema"}
	}
	return BreadcrumbSheet, []any{"URL", "Breadcrumb Schema"}
}

func values(kind schemagen.Kind, rec *schemagen.Record) []any {
	if kind == schemagen.KindArticle {
		return []any{
			rec.SourceURL,
			rec.Title,
			rec.ImageURL,
			rec.GeneratedAt.Format(TimestampLayout),
			rec.Markup,
		}
	}
	return []any{rec.SourceURL, rec.Markup}
}
