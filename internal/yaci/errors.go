package yaci

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// HTTPError is returned when the DevKit answers with a non-2xx status.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %s", e.URL, e.Status)
}

// IsConnectionRefused reports whether err means no connection to the DevKit
// could be established at all: the port refused it, or the dial failed before
// any request was written. DNS failures and timeouts are not included; they
// are reported with their raw message like any other failure.
func IsConnectionRefused(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial" && !opErr.Timeout()
	}
	return false
}
