// =============================================================================
// FILE: cmd/yaci-status/main.go
// ROLE: Entry point for the Yaci DevKit status check
// =============================================================================
//
// One-shot command: resolve the DevKit URL from the environment, fetch the
// latest epoch and block, print a report, exit.
//
//   yaci-status                  ← colorized report
//   yaci-status --output json    ← same data as a JSON document
//   yaci-status --debug          ← trace requests on stderr
//
// Exit code 0 when both requests succeed, 1 on the first failure.
// =============================================================================

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
