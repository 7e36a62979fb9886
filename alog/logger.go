// Package alog is the structured logger of typedrepo. It is a thin layer over log/slog.
package alog

import (
	"context"
	"log/slog"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that attributes
//     added with AddAttr end up in every line.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them, see:
//     https://dave.cheney.net/2015/11/05/lets-talk-about-logging
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	With(args ...any) *slog.Logger
	WithGroup(name string) *slog.Logger
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the library.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by library developers, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name for the library levels.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

// getLevelNames maps the library log levels to human-readable names.
func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "TYPEDREPO:INFO",
		LevelDebug: "TYPEDREPO:DEBUG",
	}
}

// ParseLevel maps the level names used in configuration to a slog.Level.
// Next to the slog names it accepts "typedrepo:info" and "typedrepo:debug".
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "typedrepo:info", "TYPEDREPO:INFO":
		return LevelInfo, nil
	case "typedrepo:debug", "TYPEDREPO:DEBUG":
		return LevelDebug, nil
	}

	var level slog.Level

	err := level.UnmarshalText([]byte(name))

	return level, err //nolint:wrapcheck // error message of slog is clear
}

type ctxKey struct{}

// AddAttr adds attr to the context, so all lines logged with it carry attr.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	return AddAttrs(ctx, attr)
}

// AddAttrs adds attrs to the context, so all lines logged with it carry attrs.
func AddAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := FromContext(ctx)

	all := make([]slog.Attr, 0, len(existing)+len(attrs))
	all = append(all, existing...)
	all = append(all, attrs...)

	return context.WithValue(ctx, ctxKey{}, all)
}

// FromContext returns the attributes added to ctx.
func FromContext(ctx context.Context) ([]slog.Attr, bool) {
	attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr)

	return attrs, ok
}
