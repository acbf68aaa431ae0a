package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger backed by go.uber.org/zap's sugared logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZap builds a production-configured zap logger at the given level.
func NewZap(level Level) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "ts"

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger.Sugar()}, nil
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case ErrorLevel:
		return zapcore.ErrorLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Info(args ...any)                  { l.logger.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...any)  { l.logger.Infof(format, args...) }
func (l *ZapLogger) Warn(args ...any)                  { l.logger.Warn(args...) }
func (l *ZapLogger) Warnf(format string, args ...any)  { l.logger.Warnf(format, args...) }
func (l *ZapLogger) Error(args ...any)                 { l.logger.Error(args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.logger.Errorf(format, args...) }
func (l *ZapLogger) Sync() error                       { return l.logger.Sync() }
