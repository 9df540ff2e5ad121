package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"CACHECHECK_BACKEND", "CACHECHECK_REDIS_ADDRS", "CACHECHECK_REDIS_DB",
		"CACHECHECK_CODEC", "CACHECHECK_NAMESPACE", "CACHECHECK_KEY_PREFIX",
		"CACHECHECK_TIMEOUT_MS", "CACHECHECK_MAX_DECODE", "LOG_DIR", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Backend != "memory" || cfg.Codec != "string" || cfg.Namespace != "healthcheck" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if len(cfg.RedisAddrs) != 1 || cfg.RedisAddrs[0] != "127.0.0.1:6379" {
		t.Fatalf("redis addrs = %v", cfg.RedisAddrs)
	}
	if cfg.Timeout != 2*time.Second || cfg.LogLevel != "info" || cfg.LogDir != "" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFromEnv_Parses(t *testing.T) {
	t.Setenv("CACHECHECK_BACKEND", "Redis")
	t.Setenv("CACHECHECK_REDIS_ADDRS", "a:1, b:2,,")
	t.Setenv("CACHECHECK_REDIS_DB", "3")
	t.Setenv("CACHECHECK_CODEC", "msgpack")
	t.Setenv("CACHECHECK_KEY_PREFIX", "svc")
	t.Setenv("CACHECHECK_TIMEOUT_MS", "250")
	t.Setenv("CACHECHECK_MAX_DECODE", "512")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := FromEnv()
	if cfg.Backend != "redis" || cfg.Codec != "msgpack" || cfg.KeyPrefix != "svc" {
		t.Fatalf("parse wrong: %+v", cfg)
	}
	if len(cfg.RedisAddrs) != 2 || cfg.RedisAddrs[1] != "b:2" || cfg.RedisDB != 3 {
		t.Fatalf("redis wrong: %+v", cfg)
	}
	if cfg.Timeout != 250*time.Millisecond || cfg.MaxDecode != 512 || cfg.LogLevel != "debug" {
		t.Fatalf("parse wrong: %+v", cfg)
	}
}

func TestFromEnv_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("CACHECHECK_TIMEOUT_MS", "-5")
	t.Setenv("CACHECHECK_REDIS_DB", "x")
	cfg := FromEnv()
	if cfg.Timeout != 2*time.Second || cfg.RedisDB != 0 {
		t.Fatalf("bad values not ignored: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Backend: "memory", Codec: "string", LogLevel: "info"}
	cases := map[string]func(*Config){
		"backend": func(c *Config) { c.Backend = "memcached" },
		"codec":   func(c *Config) { c.Codec = "xml" },
		"level":   func(c *Config) { c.LogLevel = "trace" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error for %+v", c)
			}
		})
	}
}
