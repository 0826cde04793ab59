package log

import (
	"context"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logger used by repositories and usecases.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, err error, fields ...zap.Field)
}

type logger struct {
	l *otelzap.Logger
}

var global Logger = &logger{l: otelzap.New(zap.NewNop())}

// SetupLogger builds the zap logger; APP_ENV=production switches to the JSON encoder.
func SetupLogger() *zap.Logger {
	var config zap.Config
	if os.Getenv("APP_ENV") == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}

	l, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return l
}

// Setup returns an otelzap logger for handlers and middleware.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger(), otelzap.WithMinLevel(zapcore.InfoLevel))
}

func Init(l *zap.Logger) {
	ol := otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel))
	otelzap.ReplaceGlobals(ol)
	global = &logger{l: ol}
}

func GetLogger() Logger {
	return global
}

// New wraps an existing otelzap logger.
func New(l *otelzap.Logger) Logger {
	return &logger{l: l}
}

func (l *logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Ctx(ctx).Info(msg, fields...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Ctx(ctx).Warn(msg, fields...)
}

func (l *logger) Error(ctx context.Context, msg string, err error, fields ...zap.Field) {
	l.l.Ctx(ctx).Error(msg, append(fields, zap.Error(err))...)
}
