package logrus

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/cachecheck"
)

func TestLoggerTagsComponentAndError(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Error("cache check errored", cachecheck.Fields{"err": errors.New("boom"), "step": "write"})

	e := hook.LastEntry()
	if e == nil {
		t.Fatalf("no entry")
	}
	if e.Level != logrus.ErrorLevel || e.Message != "cache check errored" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Data["component"] != "cachecheck" || e.Data["step"] != "write" {
		t.Fatalf("fields = %v", e.Data)
	}
	if err, _ := e.Data[logrus.ErrorKey].(error); err == nil || err.Error() != "boom" {
		t.Fatalf("error field = %v", e.Data[logrus.ErrorKey])
	}
}
