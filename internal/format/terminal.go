// Package format renders status check outcomes for humans (colorized
// terminal layout) and for machines (JSON or YAML documents).
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/dmagro/yaci-status/internal/status"
)

var rule = strings.Repeat("=", 50)

// Terminal renders the colorized report layout.
type Terminal struct {
	w   io.Writer
	err error
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// printf remembers the first write error so callers check once at the end.
func (t *Terminal) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Terminal) println(s string) {
	t.printf("%s\n", s)
}

func (t *Terminal) Start(baseURL string) error {
	t.println(Blue(rule))
	t.println(Blue("Checking yaci status..."))
	t.println(Blue(rule))
	t.println("")
	t.println(Yellow("Connecting to Yaci DevKit..."))
	t.println(Dim("URL: " + baseURL))
	t.println("")
	t.println(Yellow("Fetching blockchain info..."))
	return t.err
}

func (t *Terminal) Success(r *status.Report) error {
	t.println(Green("Yaci DevKit is running!"))
	t.println("")

	t.println(Cyan("Blockchain Information:"))
	t.println(White(fmt.Sprintf("  Current Epoch: %d", r.Epoch.Epoch)))
	t.println(White(fmt.Sprintf("  Blocks: %d", r.Epoch.BlockCount)))
	t.println(White(fmt.Sprintf("  Transactions: %d", r.Epoch.TxCount)))
	t.println("")

	t.println(Cyan("Latest Block:"))
	t.println(White(fmt.Sprintf("  Block Number: %d", r.Block.Number)))
	t.println(White(fmt.Sprintf("  Block Hash: %s", r.Block.Hash)))
	t.println(White(fmt.Sprintf("  Time: %s", r.Block.ISOTime())))
	t.println("")

	t.println(Cyan("Network:"))
	t.println(White(fmt.Sprintf("  Network Magic: %s", r.Network.Magic)))
	t.println(White(fmt.Sprintf("  Network ID: %s", r.Network.ID)))
	t.println("")

	t.renderRequests(r)

	t.println(Green(rule))
	t.println(Green("✓ All checks passed!"))
	t.println(Green(rule))
	t.println("")
	return t.err
}

func (t *Terminal) renderRequests(r *status.Report) {
	if t.err != nil || len(r.Requests) == 0 {
		return
	}

	t.println(Cyan("Requests:"))
	tbl := table.New("Endpoint", "Status", "Latency").
		WithHeaderFormatter(headerFmt).
		WithWidthFunc(visibleWidth).
		WithWriter(t.w)
	for _, s := range r.Requests {
		tbl.AddRow(r.BaseURL+s.Endpoint, ColorStatus(s.Status), ColorLatency(s.Latency))
	}
	tbl.Print()
	t.println("")
}

func (t *Terminal) Failure(f *status.Failure) error {
	t.println(Red("Error connecting to yaci"))
	t.println("")

	if f.ConnectionRefused {
		t.println(Yellow("Troubleshooting:"))
		t.println(White("  1. Is Yaci DevKit running?"))
		t.println(White("     Start it with: devkit start"))
		t.println(White("  2. Check the URL in .env file"))
		t.println(White("     Current: " + f.BaseURL))
		return t.err
	}

	t.println(Red("Error details:"))
	t.println(Dim(f.Err.Error()))
	return t.err
}
