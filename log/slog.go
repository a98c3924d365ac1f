package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "github.com/hyperledger-labs/yui-header-relayer"

type RelayLogger struct {
	*slog.Logger
}

var relayLogger *RelayLogger

func InitLogger(logLevel, format, output string, enableTelemetry bool) error {
	var writer io.Writer
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		return errors.New("invalid log output")
	}

	return InitLoggerWithWriter(logLevel, format, writer, enableTelemetry)
}

func InitLoggerWithWriter(logLevel, format string, writer io.Writer, enableTelemetry bool) error {
	slogLevel, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: true,
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		return errors.New("invalid log format")
	}

	if enableTelemetry {
		otelHandler := otelslog.NewHandler(instrumentationName, otelslog.WithSource(true))
		handler = slogmulti.Fanout(handler, &levelHandler{level: slogLevel, Handler: otelHandler})
	}

	relayLogger = &RelayLogger{slog.New(handler)}
	return nil
}

func parseLevel(logLevel string) (slog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, errors.New("invalid log level")
	}
}

// levelHandler filters records below level before handing them to the wrapped handler.
// The otelslog bridge forwards every record regardless of the configured level.
type levelHandler struct {
	level slog.Level
	slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.Handler.Enabled(ctx, level)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, Handler: h.Handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, Handler: h.Handler.WithGroup(name)}
}

// GetLogger returns the global logger. A text logger writing to stderr is
// installed if InitLogger has not been called yet.
func GetLogger() *RelayLogger {
	if relayLogger == nil {
		relayLogger = &RelayLogger{slog.New(slog.NewTextHandler(os.Stderr, nil))}
	}
	return relayLogger
}

func (rl *RelayLogger) Error(msg string, err error, otherArgs ...any) {
	rl.log(context.Background(), slog.LevelError, 1, msg, errorArgs(err, otherArgs)...)
}

func (rl *RelayLogger) ErrorContext(ctx context.Context, msg string, err error, otherArgs ...any) {
	rl.log(ctx, slog.LevelError, 1, msg, errorArgs(err, otherArgs)...)
}

func errorArgs(err error, otherArgs []any) []any {
	args := []any{"error", err}
	if err != nil {
		args = append(args, "stack", fmt.Sprintf("%+v", errors.WithStackDepth(err, 2)))
	}
	return append(args, otherArgs...)
}

func (rl *RelayLogger) Fatal(msg string, err error, otherArgs ...any) {
	rl.log(context.Background(), slog.LevelError, 1, msg, errorArgs(err, otherArgs)...)
	os.Exit(1)
}

// TimeTrack logs the time elapsed since start. Use it with defer.
func (rl *RelayLogger) TimeTrack(start time.Time, name string, otherArgs ...any) {
	elapsed := time.Since(start)
	allArgs := append([]any{"name", name, "elapsed", elapsed.Nanoseconds()}, otherArgs...)
	rl.log(context.Background(), slog.LevelInfo, 1, "time track", allArgs...)
}

// log keeps the caller of the exported helper as the record source.
func (rl *RelayLogger) log(ctx context.Context, level slog.Level, skip int, msg string, args ...any) {
	if !rl.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip+2, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = rl.Handler().Handle(ctx, r)
}

func (rl *RelayLogger) WithChainPair(
	srcChainID string,
	dstChainID string,
) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"source chain id", srcChainID,
			"destination chain id", dstChainID,
		),
	}
}

func (rl *RelayLogger) WithChain(
	chainID string,
) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"chain id", chainID,
		),
	}
}

func (rl *RelayLogger) WithClient(
	chainID, clientID, clientType string,
) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"chain id", chainID,
			"client id", clientID,
			"client type", clientType,
		),
	}
}

func (rl *RelayLogger) WithModule(
	moduleName string,
) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"module", moduleName,
		),
	}
}
