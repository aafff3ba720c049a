package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field re-exports zap.Field so callers never import zap directly.
type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int32    = zap.Int32
	Int64    = zap.Int64
	Uint64   = zap.Uint64
	Bool     = zap.Bool
	Any      = zap.Any
	Err      = zap.Error
	Time     = zap.Time
	Duration = zap.Duration
)

var logger = zap.NewNop()

type options struct {
	level       zapcore.Level
	env         string
	withCaller  bool
	callerSkip  int
	development bool
}

type Option func(*options)

func WithLogLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithLogEnvOption(env string) Option {
	return func(o *options) {
		o.env = env
		if env == "local" || env == "" {
			o.development = true
		}
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.withCaller = enabled
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

// Init replaces the package logger. Call once from setup before anything logs.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, withCaller: true, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if o.development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), o.level)

	zapOpts := []zap.Option{}
	if o.withCaller {
		zapOpts = append(zapOpts, zap.WithCaller(true), zap.AddCallerSkip(o.callerSkip))
	}

	logger = zap.New(core, zapOpts...).Named(appName)
}

// InitForTest silences output in test mains.
func InitForTest() {
	logger = zap.NewNop()
}

func Sync() {
	_ = logger.Sync()
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := GetCorrelationId(ctx); cid != "" {
		fields = append(fields, zap.String("correlationId", cid))
	}
	if host := GetHost(ctx); host != "" {
		fields = append(fields, zap.String("host", host))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	logger.Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Fatalf(format, args...)
}
