package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
)

// Ensure LoggingRecordService implements schemagen.RecordService.
var _ schemagen.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging of writes.
type LoggingRecordService struct {
	next   schemagen.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next schemagen.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *schemagen.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"url", rec.SourceURL,
			"kind", rec.Kind,
			"id", rec.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*schemagen.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter schemagen.RecordFilter) ([]*schemagen.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecords(ctx context.Context, filter schemagen.RecordFilter) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete records",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecords(ctx, filter)
}
