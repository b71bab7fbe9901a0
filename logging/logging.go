package logging

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	appctx "github.com/brave-intl/yookassa-go/context"
	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

var (
	// we are not promising to get every log message in the log
	// anymore, when it comes down to it, we would rather the caller
	// runs than fails on log writing contention.  This will let us
	// see how many logs we are dropping
	droppedLogTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "yookassa_dropped_log_events_total",
			Help: "A counter for the number of dropped log messages",
		},
	)
	Writer io.WriteCloser
)

// NopCloser wraps w, Close does nothing
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func init() {
	prometheus.MustRegister(droppedLogTotal)
}

// SetupLoggerWithLevel - helper to setup a logger and associate with context with a given log level
func SetupLoggerWithLevel(ctx context.Context, level zerolog.Level) (context.Context, *zerolog.Logger) {
	ctx = context.WithValue(ctx, appctx.LogLevelCTXKey, level)
	return SetupLogger(ctx)
}

// SetupLogger - helper to setup a logger and associate with context
func SetupLogger(ctx context.Context) (context.Context, *zerolog.Logger) {
	writer, ok := ctx.Value(appctx.LogWriterCTXKey).(io.Writer)

	env, err := appctx.GetStringFromContext(ctx, appctx.EnvironmentCTXKey)
	if err != nil {
		// if not in context, default to local
		env = "local"
	}

	// defaults to info level
	level, _ := appctx.GetLogLevelFromContext(ctx, appctx.LogLevelCTXKey)

	if ok {
		Writer = NopCloser(writer)
	} else if env != "local" {
		// this log writer uses a ring buffer and drops messages that cannot be processed
		// in a timely manner
		Writer = diode.NewWriter(os.Stdout, 1000, 20*time.Millisecond, func(missed int) {
			droppedLogTotal.Add(float64(missed))
		})
	} else {
		Writer = NopCloser(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// always print out timestamp
	l := zerolog.New(Writer).With().Timestamp().Logger()
	l = l.Level(level)

	// debug override
	if debug, err := appctx.GetBoolFromContext(ctx, appctx.DebugLoggingCTXKey); err == nil && debug {
		l = l.Level(zerolog.DebugLevel)
	}

	return UpdateContext(ctx, l)
}

// UpdateContext - associate logger with the context
func UpdateContext(ctx context.Context, logger zerolog.Logger) (context.Context, *zerolog.Logger) {
	ctx = context.WithValue(ctx, appctx.LoggerCTXKey, &logger)
	ctx = logger.WithContext(ctx)
	return ctx, &logger
}

// Logger - get a logger scoped to a module
func Logger(ctx context.Context, prefix string) *zerolog.Logger {
	l := FromContext(ctx)
	sl := l.With().Str("module", prefix).Logger()
	return &sl
}

// FromContext - retrieves logger from context or gets a new logger if not present
func FromContext(ctx context.Context) *zerolog.Logger {
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		_, logger = SetupLogger(ctx)
	}
	return logger
}

// LogAndError - helper to log and error, the data of an error bundle is logged with it
func LogAndError(logger *zerolog.Logger, msg string, err error) error {
	if logger != nil {
		e := logger.Error().Err(err)
		var eb *errorutils.ErrorBundle
		if errors.As(err, &eb) && eb.Data() != nil {
			e = e.Str("data", eb.DataToString())
		}
		e.Msg(msg)
	}
	return err
}
