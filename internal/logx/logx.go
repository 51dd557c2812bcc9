// Package logx provides structured logging functionality
package logx

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger to provide a consistent interface.
// A scoped Logger resolves the current global logger on every call, so
// package-level scopes pick up a later Init.
type Logger struct {
	zap   *zap.Logger
	scope string
}

var (
	globalZap atomic.Pointer[zap.Logger]
	level     = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	// 初始化默认全局 logger
	if IsLocalDev(os.Getenv("APP_ENV")) {
		level.SetLevel(zap.DebugLevel)
	}
	z, err := build("console")
	if err != nil {
		panic(err)
	}
	globalZap.Store(z)
}

// IsLocalDev checks if the environment is local development
func IsLocalDev(appEnv string) bool {
	return appEnv == "local" || appEnv == "dev" || appEnv == "development"
}

// New creates a standalone logger named prefix.
func New(prefix string) (*Logger, error) {
	z, err := build("console")
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		z = z.Named(prefix)
	}
	return &Logger{zap: z}, nil
}

// GetScope returns a logger named after a component, e.g. "db" or "httpx".
func GetScope(name string) *Logger {
	return &Logger{scope: name}
}

// customTimeEncoder 自定义时间编码器
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func getLoggerConfig() zap.Config {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Development = false
	config.DisableCaller = false
	config.DisableStacktrace = false
	config.Sampling = nil

	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	config.Encoding = "console"
	return config
}

func build(format string) (*zap.Logger, error) {
	config := getLoggerConfig()
	// 根据格式设置编码
	if strings.ToLower(format) == "json" {
		config.Encoding = "json"
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}
	return config.Build(zap.AddCallerSkip(1)) // 跳过封装层
}

// Init configures the global logger. Safe to call again when config changes.
func Init(lvl, format string) {
	level.SetLevel(parseLevel(lvl))
	z, err := build(format)
	if err != nil {
		panic(err)
	}
	globalZap.Store(z)
}

// SetLevel changes the level of every logger at runtime.
func SetLevel(lvl string) {
	level.SetLevel(parseLevel(lvl))
}

// L returns the global sugar logger
func L() *zap.SugaredLogger {
	return globalZap.Load().Sugar()
}

// GetLogger returns the underlying zap logger for advanced usage
func GetLogger() *zap.Logger {
	return globalZap.Load()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) z() *zap.Logger {
	if l.zap != nil {
		return l.zap
	}
	z := globalZap.Load()
	if l.scope != "" {
		z = z.Named(l.scope)
	}
	return z
}

// With returns a child logger carrying fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.z().With(fields...)}
}

// Close flushes buffered entries.
func (l *Logger) Close() error {
	return l.z().Sync()
}

// Sugar returns the sugar logger for key-value style logging
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.z().Sugar()
}

// Zap returns the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.z()
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.z().Debug(msg, fields...) }

func (l *Logger) Info(msg string, fields ...zap.Field) { l.z().Info(msg, fields...) }

func (l *Logger) Warn(msg string, fields ...zap.Field) { l.z().Warn(msg, fields...) }

func (l *Logger) Error(msg string, fields ...zap.Field) { l.z().Error(msg, fields...) }

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.z().Fatal(msg, fields...) }
