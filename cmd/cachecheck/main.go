// Command cachecheck runs one cache health check against the backend named
// in the environment and reports the result.
//
// Exit codes: 0 check passed, 1 check failed, 2 setup or unexpected error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/cachecheck"
	"github.com/unkn0wn-root/cachecheck/internal/backend"
	"github.com/unkn0wn-root/cachecheck/internal/config"
	"github.com/unkn0wn-root/cachecheck/internal/logging"
	zaplog "github.com/unkn0wn-root/cachecheck/log/zap"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitError  = 2
)

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	log, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(exitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, log, os.Stdout)
	stop()
	_ = log.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger, out io.Writer) (code int) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	b, err := backend.Open(ctx, cfg, func(storageKey, reason string) {
		log.Debug("dropped unreadable probe entry", zap.String("key", storageKey), zap.String("reason", reason))
	})
	if err != nil {
		log.Error("open backend", zap.String("backend", cfg.Backend), zap.Error(err))
		fmt.Fprintf(out, "error %s: %v\n", cachecheck.Identifier, err)
		return exitError
	}
	defer func() {
		// cancel may already have fired; closing must still run.
		if err := multierr.Combine(b.Close(context.Background()), log.Sync()); err != nil {
			log.Debug("shutdown", zap.Error(err))
		}
	}()

	checker, err := cachecheck.New(cachecheck.Options{
		Pool:         b.Pool,
		KeyGenerator: cachecheck.NewUUIDKeyGenerator(cfg.KeyPrefix),
		Logger:       zaplog.New(log),
	})
	if err != nil {
		fmt.Fprintf(out, "error %s: %v\n", cachecheck.Identifier, err)
		return exitError
	}

	res, err := checker.Check(ctx)
	if err != nil {
		fmt.Fprintf(out, "error %s: %v\n", checker.Identifier(), err)
		return exitError
	}
	if !res.Success {
		fmt.Fprintf(out, "fail %s: %s\n", checker.Identifier(), res.Message)
		return exitFailed
	}
	fmt.Fprintf(out, "ok %s: %s\n", checker.Identifier(), res.Message)
	return exitOK
}
