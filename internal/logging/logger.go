package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"herobattle/internal/combat"
)

// New builds a logger writing to stderr. format is "console" or "json";
// level is any zap level name.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	switch format {
	case "", "console":
		format = "console"
	case "json":
	default:
		return nil, fmt.Errorf("log format %q: want console or json", format)
	}
	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Encoding:    format,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}

// EventListener logs every combat event at debug level with its fields.
func EventListener(log *zap.Logger) combat.Listener {
	return func(ev combat.Event) {
		if ce := log.Check(zapcore.DebugLevel, ev.String()); ce != nil {
			ce.Write(eventFields(ev)...)
		}
	}
}

func eventFields(ev combat.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("kind", string(ev.Kind)),
		zap.Int("round", ev.Round),
	}
	if ev.Turn > 0 {
		fields = append(fields, zap.Int("turn", ev.Turn))
	}
	if ev.Actor != "" {
		fields = append(fields, zap.String("actor", ev.Actor))
	}
	if ev.Target != "" {
		fields = append(fields,
			zap.String("target", ev.Target),
			zap.Int("damage", ev.Damage),
			zap.Bool("crit", ev.Crit),
			zap.Bool("dodged", ev.Dodged),
			zap.Bool("target_died", ev.TargetDied))
	}
	if ev.Healed > 0 {
		fields = append(fields, zap.Int("healed", ev.Healed))
	}
	if ev.Reason != combat.ReasonNone {
		fields = append(fields, zap.String("reason", string(ev.Reason)))
	}
	if ev.GameOver {
		fields = append(fields,
			zap.Bool("game_over", true),
			zap.String("winner", ev.Winner))
	}
	return fields
}
