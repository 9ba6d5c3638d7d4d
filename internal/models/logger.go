package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// RequestIDKey is the context key the request ID is stored under
// so that queries can be correlated with the request that issued them.
const RequestIDKey KoudenContext = "kouden-request-id"

// slowQuery is the duration after which queries are logged at warn level.
const slowQuery = 200 * time.Millisecond

// logger adapts zerolog to the gorm logger interface.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) with(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &l.Logger
	}

	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok || id == "" {
		return &l.Logger
	}

	lg := l.Logger.With().Str("request-id", id).Logger()
	return &lg
}

func (l *logger) Info(ctx context.Context, s string, args ...any) {
	l.with(ctx).Info().Msgf(s, args...)
}

func (l *logger) Warn(ctx context.Context, s string, args ...any) {
	l.with(ctx).Warn().Msgf(s, args...)
}

func (l *logger) Error(ctx context.Context, s string, args ...any) {
	l.with(ctx).Error().Msgf(s, args...)
}

func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	lg := l.with(ctx)

	// Not found errors are regular results for lookups
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound) {
		lg.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query error")
		return
	}

	if elapsed > slowQuery {
		lg.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] slow query")
		return
	}

	lg.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query")
}
