package backend

import (
	"context"
	"testing"

	"github.com/unkn0wn-root/cachecheck"
	"github.com/unkn0wn-root/cachecheck/codec"
	"github.com/unkn0wn-root/cachecheck/internal/config"
)

func TestOpenInProcessBackendsPassCheck(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"memory", "bigcache", "ristretto"} {
		for _, cname := range config.Codecs {
			t.Run(name+"/"+cname, func(t *testing.T) {
				b, err := Open(ctx, config.Config{Backend: name, Codec: cname, Namespace: "test"}, nil)
				if err != nil {
					t.Fatalf("Open: %v", err)
				}
				t.Cleanup(func() { _ = b.Close(ctx) })

				c, err := cachecheck.New(cachecheck.Options{Pool: b.Pool})
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				res, err := c.Check(ctx)
				if err != nil {
					t.Fatalf("Check: %v", err)
				}
				if !res.Success {
					t.Fatalf("check failed: %s", res.Message)
				}
			})
		}
	}
}

func TestCodecLimitWraps(t *testing.T) {
	c, err := Codec("json", 16)
	if err != nil {
		t.Fatalf("Codec: %v", err)
	}
	if _, ok := c.(codec.Limit[string]); !ok {
		t.Fatalf("got %T want codec.Limit", c)
	}
	if _, err := Codec("xml", 0); err == nil {
		t.Fatalf("expected error for unknown codec")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), config.Config{Backend: "memcached"}, nil); err == nil {
		t.Fatalf("expected error")
	}
}
