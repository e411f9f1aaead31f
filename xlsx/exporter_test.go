package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("breadcrumb sheet", func(t *testing.T) {
		t.Parallel()

		records := []*schemagen.Record{
			{SourceURL: "https://example.com/a/", Markup: "<script>a</script>"},
			{SourceURL: "https://example.com/b/", Markup: "<script>b</script>"},
		}
		var buf bytes.Buffer

		err := xlsx.NewExporter().Export(&buf, schemagen.KindBreadcrumb, records)

		require.NoError(t, err)
		rows := readRows(t, buf.Bytes(), xlsx.BreadcrumbSheet)
		assert.Equal(t, [][]string{
			{"URL", "Breadcrumb Schema"},
			{"https://example.com/a/", "<script>a</script>"},
			{"https://example.com/b/", "<script>b</script>"},
		}, rows)
	})

	t.Run("article sheet", func(t *testing.T) {
		t.Parallel()

		records := []*schemagen.Record{{
			SourceURL:   "https://example.com/post/",
			Title:       "A Post",
			ImageURL:    "https://example.com/img.png",
			Markup:      "<script>post</script>",
			GeneratedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		}}
		var buf bytes.Buffer

		err := xlsx.NewExporter().Export(&buf, schemagen.KindArticle, records)

		require.NoError(t, err)
		rows := readRows(t, buf.Bytes(), xlsx.ArticleSheet)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"URL", "Title", "Image", "Generated Timestamp", "Article Schema"}, rows[0])
		assert.Equal(t, []string{
			"https://example.com/post/",
			"A Post",
			"https://example.com/img.png",
			"2025-02-03 04:05:06",
			"<script>post</script>",
		}, rows[1])
	})

	t.Run("header only when empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := xlsx.NewExporter().Export(&buf, schemagen.KindBreadcrumb, nil)

		require.NoError(t, err)
		assert.Len(t, readRows(t, buf.Bytes(), xlsx.BreadcrumbSheet), 1)
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		err := xlsx.NewExporter().Export(&bytes.Buffer{}, schemagen.Kind("faq"), nil)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}
