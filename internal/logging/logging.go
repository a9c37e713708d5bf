package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log destination and verbosity.
type Options struct {
	// Path is the log file. An empty path keeps logging silent.
	Path string
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// RunID tags every entry written during this process.
	RunID string
}

var (
	mu           sync.Mutex
	logger       = zap.NewNop()
	level        = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	baseLevel    = zapcore.InfoLevel
	traceEnabled bool
)

// ParseLevel maps a level name onto its zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// Configure replaces the shared logger. Directories are created
// automatically when missing.
func Configure(opts Options) error {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	baseLevel = lvl
	level.SetLevel(effectiveLevel())

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		logger = zap.NewNop()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create log directory: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	config := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if opts.RunID != "" {
		built = built.With(zap.String("run_id", opts.RunID))
	}
	logger = built
	return nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	level.SetLevel(effectiveLevel())
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

func effectiveLevel() zapcore.Level {
	if traceEnabled {
		return zapcore.DebugLevel
	}
	return baseLevel
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Trace writes a debug entry for event when tracing is enabled.
func Trace(event string, fields ...zap.Field) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	l.Debug(event, fields...)
}

// Info writes an informational entry.
func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

// Error records err in the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error(err.Error(), zap.Error(err))
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger().Sync()
}
