package yaci

import (
	"time"
)

// NotAvailable is shown in place of values the DevKit did not report.
const NotAvailable = "N/A"

// EpochInfo is the subset of GET /epochs/latest the status check displays.
// epoch and blkCount are required; a missing txCount is zero.
type EpochInfo struct {
	Epoch      int64 `json:"epoch"`
	BlockCount int64 `json:"blkCount"`
	TxCount    int64 `json:"txCount"`
}

// BlockInfo is the subset of GET /blocks/latest the status check displays.
// number and hash are required.
type BlockInfo struct {
	Number int64  `json:"number"`
	Hash   string `json:"hash"`
	Time   *int64 `json:"time"` // Unix seconds, optional
}

// HasTime reports whether the block carries a usable timestamp.
// Zero is treated the same as absent.
func (b *BlockInfo) HasTime() bool {
	return b.Time != nil && *b.Time != 0
}

// Timestamp returns the block time in UTC. ok is false when HasTime is false.
func (b *BlockInfo) Timestamp() (t time.Time, ok bool) {
	if !b.HasTime() {
		return time.Time{}, false
	}
	return time.Unix(*b.Time, 0).UTC(), true
}

// ISOTime renders the block time as ISO-8601 with millisecond precision
// (e.g. 2023-11-14T22:13:20.000Z), or NotAvailable.
func (b *BlockInfo) ISOTime() string {
	t, ok := b.Timestamp()
	if !ok {
		return NotAvailable
	}
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}

// RequestSample records one successful GET for the requests summary.
type RequestSample struct {
	Endpoint string
	Status   int
	Latency  time.Duration
}
