package cachecheck

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"testing"
)

const testUUID = "16dfb592-dbc2-4727-9fff-34db268fdddd"

var uuidV4 = `[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}`

// fixedUUIDReader yields the bytes of testUUID; its version and variant bits
// are already those of a v4 uuid, so NewRandomFromReader keeps them as is.
func fixedUUIDReader(t *testing.T) *bytes.Reader {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(testUUID, "-", ""))
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(b)
}

func TestGenerateWithDefaultPrefix(t *testing.T) {
	g := NewUUIDKeyGeneratorFromReader("", fixedUUIDReader(t))
	got, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := "oat-health-check-" + testUUID; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestGenerateWithCustomPrefix(t *testing.T) {
	g := NewUUIDKeyGeneratorFromReader("custom-prefix", fixedUUIDReader(t))
	got, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := "custom-prefix-" + testUUID; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestGenerateRandomMatchesPattern(t *testing.T) {
	cases := []struct {
		prefix string
		re     *regexp.Regexp
	}{
		{"", regexp.MustCompile(`^oat-health-check-` + uuidV4 + `$`)},
		{"svc", regexp.MustCompile(`^svc-` + uuidV4 + `$`)},
	}
	for _, tc := range cases {
		got, err := NewUUIDKeyGenerator(tc.prefix).Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !tc.re.MatchString(got) {
			t.Fatalf("%q does not match %s", got, tc.re)
		}
	}
}

func TestGenerateIsUnique(t *testing.T) {
	g := NewUUIDKeyGenerator("")
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		k, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate key %q after %d calls", k, i)
		}
		seen[k] = struct{}{}
	}
}

func TestGenerateReportsRandomnessFailure(t *testing.T) {
	g := NewUUIDKeyGeneratorFromReader("", bytes.NewReader(nil))
	if _, err := g.Generate(); err == nil {
		t.Fatalf("expected error from exhausted reader")
	}
}

func TestKeyGeneratorFunc(t *testing.T) {
	boom := errors.New("boom")
	var g KeyGenerator = KeyGeneratorFunc(func() (string, error) { return "", boom })
	if _, err := g.Generate(); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}
