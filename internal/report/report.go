// Package report provides the machine-readable model of a status check
// outcome and its JSON/YAML encodings.
//
// Fields are pointers where a value may legitimately be absent so the
// encoders can omit them (a failed check has no epoch or block section).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmagro/yaci-status/internal/status"
	"github.com/dmagro/yaci-status/internal/yaci"
)

// Encodings supported by Encode.
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// Failure kinds.
const (
	KindConnectionRefused = "connection_refused"
	KindRequestFailed     = "request_failed"
)

// MillisDuration marshals a time.Duration as an integer millisecond count.
type MillisDuration time.Duration

func (d MillisDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Milliseconds())
}

func (d MillisDuration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).Milliseconds(), nil
}

type Epoch struct {
	Epoch        int64 `json:"epoch" yaml:"epoch"`
	Blocks       int64 `json:"blocks" yaml:"blocks"`
	Transactions int64 `json:"transactions" yaml:"transactions"`
}

type Block struct {
	Number int64  `json:"number" yaml:"number"`
	Hash   string `json:"hash" yaml:"hash"`
	// Time is the ISO-8601 block time, or "N/A".
	Time     string `json:"time" yaml:"time"`
	UnixTime *int64 `json:"unix_time,omitempty" yaml:"unix_time,omitempty"`
}

type Network struct {
	Magic string `json:"magic" yaml:"magic"`
	ID    string `json:"id" yaml:"id"`
}

type Request struct {
	Endpoint  string         `json:"endpoint" yaml:"endpoint"`
	Status    int            `json:"status" yaml:"status"`
	LatencyMS MillisDuration `json:"latency_ms" yaml:"latency_ms"`
}

type Error struct {
	Kind     string `json:"kind" yaml:"kind"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Message  string `json:"message" yaml:"message"`
}

// Document is the top-level encoded structure.
type Document struct {
	OK       bool      `json:"ok" yaml:"ok"`
	URL      string    `json:"url" yaml:"url"`
	Epoch    *Epoch    `json:"epoch,omitempty" yaml:"epoch,omitempty"`
	Block    *Block    `json:"block,omitempty" yaml:"block,omitempty"`
	Network  *Network  `json:"network,omitempty" yaml:"network,omitempty"`
	Requests []Request `json:"requests,omitempty" yaml:"requests,omitempty"`
	Error    *Error    `json:"error,omitempty" yaml:"error,omitempty"`
}

// FromReport converts a successful check.
func FromReport(r *status.Report) *Document {
	doc := &Document{
		OK:      true,
		URL:     r.BaseURL,
		Network: &Network{Magic: r.Network.Magic, ID: r.Network.ID},
	}

	if r.Epoch != nil {
		doc.Epoch = &Epoch{
			Epoch:        r.Epoch.Epoch,
			Blocks:       r.Epoch.BlockCount,
			Transactions: r.Epoch.TxCount,
		}
	}

	if r.Block != nil {
		doc.Block = &Block{
			Number: r.Block.Number,
			Hash:   r.Block.Hash,
			Time:   r.Block.ISOTime(),
		}
		if r.Block.HasTime() {
			ts := *r.Block.Time
			doc.Block.UnixTime = &ts
		}
	}

	for _, s := range r.Requests {
		doc.Requests = append(doc.Requests, fromSample(s))
	}

	return doc
}

// FromFailure converts an aborted check.
func FromFailure(f *status.Failure) *Document {
	kind := KindRequestFailed
	if f.ConnectionRefused {
		kind = KindConnectionRefused
	}

	msg := ""
	if f.Err != nil {
		msg = f.Err.Error()
	}

	return &Document{
		OK:  false,
		URL: f.BaseURL,
		Error: &Error{
			Kind:     kind,
			Endpoint: f.Endpoint,
			Message:  msg,
		},
	}
}

func fromSample(s yaci.RequestSample) Request {
	return Request{
		Endpoint:  s.Endpoint,
		Status:    s.Status,
		LatencyMS: MillisDuration(s.Latency),
	}
}

// Encode writes doc to w in the given encoding.
func Encode(w io.Writer, doc *Document, encoding string) error {
	switch encoding {
	case EncodingJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case EncodingYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding %q", encoding)
	}
}
