package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/cachecheck"
)

func TestLoggerSortsAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelInfo}))}

	l.Debug("hidden", cachecheck.Fields{"x": 1})
	l.Warn("cache check failed", cachecheck.Fields{"step": "verify_hit", "key": "k"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug leaked: %s", out)
	}
	if !strings.Contains(out, `msg="cache check failed" key=k step=verify_hit`) {
		t.Fatalf("unexpected output: %s", out)
	}
}
