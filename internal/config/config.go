package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backends and codecs the CLI knows how to build.
var (
	Backends = []string{"memory", "bigcache", "ristretto", "redis"}
	Codecs   = []string{"string", "json", "cbor", "msgpack", "protobuf"}
)

type Config struct {
	Backend       string        // memory | bigcache | ristretto | redis
	RedisAddrs    []string      // one addr => single node, several => cluster
	RedisPassword string        //
	RedisDB       int           //
	Codec         string        // payload encoding of the probe value
	Namespace     string        // pool namespace for probe entries
	KeyPrefix     string        // "" => cachecheck.DefaultKeyPrefix
	Timeout       time.Duration // bound on one whole check
	MaxDecode     int           // bytes; 0 disables the limit
	LogDir        string        // "" => log to stderr
	LogLevel      string        // debug | info | warn | error
}

func FromEnv() Config {
	backend := strings.ToLower(os.Getenv("CACHECHECK_BACKEND"))
	if backend == "" {
		backend = "memory"
	}

	addrs := splitList(os.Getenv("CACHECHECK_REDIS_ADDRS"))
	if len(addrs) == 0 {
		addrs = []string{"127.0.0.1:6379"}
	}

	db := 0
	if v := os.Getenv("CACHECHECK_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			db = n
		}
	}

	codec := strings.ToLower(os.Getenv("CACHECHECK_CODEC"))
	if codec == "" {
		codec = "string"
	}

	ns := os.Getenv("CACHECHECK_NAMESPACE")
	if ns == "" {
		ns = "healthcheck"
	}

	timeout := 2 * time.Second
	if v := os.Getenv("CACHECHECK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	maxDecode := 0
	if v := os.Getenv("CACHECHECK_MAX_DECODE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxDecode = n
		}
	}

	level := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if level == "" {
		level = "info"
	}

	return Config{
		Backend:       backend,
		RedisAddrs:    addrs,
		RedisPassword: os.Getenv("CACHECHECK_REDIS_PASSWORD"),
		RedisDB:       db,
		Codec:         codec,
		Namespace:     ns,
		KeyPrefix:     os.Getenv("CACHECHECK_KEY_PREFIX"),
		Timeout:       timeout,
		MaxDecode:     maxDecode,
		LogDir:        os.Getenv("LOG_DIR"),
		LogLevel:      level,
	}
}

// Validate rejects names FromEnv passes through unchecked.
func (c Config) Validate() error {
	if !oneOf(c.Backend, Backends) {
		return fmt.Errorf("config: unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	if !oneOf(c.Codec, Codecs) {
		return fmt.Errorf("config: unknown codec %q (want one of %s)", c.Codec, strings.Join(Codecs, ", "))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
