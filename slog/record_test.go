package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/mock"
	schemaslog "github.com/fwojciec/schemagen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs created record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			CreateRecordFn: func(_ context.Context, rec *schemagen.Record) error {
				rec.ID = "rec-1"
				return nil
			},
		}

		svc := schemaslog.NewLoggingRecordService(inner, logger)
		err := svc.CreateRecord(context.Background(), &schemagen.Record{
			Kind:      schemagen.KindArticle,
			SourceURL: "https://example.com/post/",
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create record")
		assert.Contains(t, output, "url=https://example.com/post/")
		assert.Contains(t, output, "kind=article")
		assert.Contains(t, output, "id=rec-1")
	})

	t.Run("logs deleted count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			DeleteRecordsFn: func(_ context.Context, _ schemagen.RecordFilter) (int, error) {
				return 3, nil
			},
		}

		svc := schemaslog.NewLoggingRecordService(inner, logger)
		n, err := svc.DeleteRecords(context.Background(), schemagen.RecordFilter{})

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("delegates reads without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ schemagen.RecordFilter) ([]*schemagen.Record, error) {
				return []*schemagen.Record{{ID: "a"}}, nil
			},
		}

		svc := schemaslog.NewLoggingRecordService(inner, logger)
		records, err := svc.FindRecords(context.Background(), schemagen.RecordFilter{})

		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Empty(t, buf.String())
	})
}
