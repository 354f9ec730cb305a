// Package logger configures log/slog for sortkit programs and carries
// logging attributes through context.Context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// Default subsystem attached to every log line, set by ConfigureLogging.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes changes to the process-wide default loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON slog handler as the
// default logger and redirects the standard log package into it.
// It returns the new default logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Third-party packages may still use the log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the destination selected by LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

var (
	// ErrInvalidLogOutput is returned when LOG_OUTPUT names an unknown destination.
	ErrInvalidLogOutput = errors.New("invalid log output")

	// ErrInvalidLogLevel is returned when LOG_LEVEL or LEGACY_LOG_LEVEL cannot be parsed.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON          true for JSON output (default false)
//	LOG_LEVEL         minimum level: debug, info, warn, error (default info)
//	LEGACY_LOG_LEVEL  level used for the standard log package (default info)
//	LOG_OUTPUT        stdout or stderr (default stdout)
//
// It returns the new default logger.
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	env := viper.New()
	env.AutomaticEnv()
	env.SetDefault("LOG_JSON", false)
	env.SetDefault("LOG_LEVEL", "info")
	env.SetDefault("LEGACY_LOG_LEVEL", "info")
	env.SetDefault("LOG_OUTPUT", "stdout")

	minLevel, err := parseLevel(env.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	legacyLevel, err := parseLevel(env.GetString("LEGACY_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	var output io.Writer

	switch outName := strings.ToLower(env.GetString("LOG_OUTPUT")); outName {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
	}

	options := Options{
		Subsystem:   app,
		JSON:        env.GetBool("LOG_JSON"),
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}

	return level, nil
}

// WithMuted marks the context so that Get returns a logger that discards
// everything. Useful for tight loops such as bulk catalog loads in tests.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context, falling back to the
// one passed to ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if s, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return s
	}

	if s, ok := subsystem.Load().(string); ok {
		return s
	}

	return ""
}

// WithRequestId tags loggers obtained from ctx with a request id.
func WithRequestId(ctx context.Context, requestId string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("request_id"), requestId)
}

// GetRequestId returns the request id stored by WithRequestId.
func GetRequestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey("request_id")).(string)

	return id, ok
}

// WithLogger stores a base logger in the context. Get uses it instead of
// slog.Default, which lets tests route output to testing.T.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), logger)
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...) //nolint:gocritic

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// nullHandler discards every record.
type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem, request id and values stored
// in ctx. A nil context yields the default logger with the default subsystem.
func Get(ctx context.Context) *slog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}

	if isMuted(ctx) {
		return nullLogger
	}

	logger, ok := ctx.Value(contextKey("logger")).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if s := GetSubsystem(ctx); s != "" {
		logger = logger.With("subsystem", s)
	}

	if requestId, found := GetRequestId(ctx); found {
		logger = logger.With("request-id", requestId)
	}

	if vals := getValues(ctx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
