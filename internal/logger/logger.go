package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a logger writing to stderr. Format is "json"
// (default) or "console". Every entry carries the service name.
func Initialize(level, format, service string) error {
	return initialize(level, format, service, zapcore.Lock(os.Stderr))
}

func initialize(level, format, service string, out zapcore.WriteSyncer) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "", "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(lvl))
	Log = zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", service)),
	).Sugar()
	return nil
}

// Mask keeps the last four characters of a credential so log lines can tell
// keys apart without leaking them.
func Mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
