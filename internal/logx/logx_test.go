package logx

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestScopeFollowsInit(t *testing.T) {
	scope := GetScope("test")
	before := GetLogger()
	Init("error", "json")
	t.Cleanup(func() { Init("info", "console") })
	if GetLogger() == before {
		t.Fatalf("Init must replace the global logger")
	}
	after := scope.Zap()
	if after.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at error level")
	}
	SetLevel("debug")
	if !after.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("SetLevel must apply to existing loggers")
	}
}
