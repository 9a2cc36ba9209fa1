// Command format-raw-dump rewrites a raw transcript as one sentence per line.
//
// Usage:
//
//	format-raw-dump [flags] <path-to-raw-dump.txt>
//
// The result is written to raw-dump-formatted.txt in the input's directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
