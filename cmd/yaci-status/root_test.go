package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/yaci-status/internal/config"
)

type devKit struct {
	epoch, block       string
	epochCode          int
	epochHits, blkHits atomic.Int32
}

func (d *devKit) start(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/epochs/latest", func(w http.ResponseWriter, r *http.Request) {
		d.epochHits.Add(1)
		if d.epochCode != 0 {
			w.WriteHeader(d.epochCode)
		}
		_, _ = w.Write([]byte(d.epoch))
	})
	mux.HandleFunc("/api/v1/blocks/latest", func(w http.ResponseWriter, r *http.Request) {
		d.blkHits.Add(1)
		_, _ = w.Write([]byte(d.block))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v1"
}

// run executes the command with an isolated environment and no .env file.
func run(t *testing.T, baseURL string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvBaseURL, baseURL)
	t.Setenv(config.EnvNetworkMagic, "42")
	t.Setenv(config.EnvNetworkID, "0")

	var stdout, stderr bytes.Buffer
	args = append([]string{"--no-color", "--env-file", filepath.Join(t.TempDir(), ".env")}, args...)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	code := execute(ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestStatusSuccess(t *testing.T) {
	kit := &devKit{
		epoch: `{"epoch":5,"blkCount":100,"txCount":42}`,
		block: `{"number":200,"hash":"abc123","time":1700000000}`,
	}
	base := kit.start(t)

	code, out, _ := run(t, base)

	assert.Equal(t, 0, code)
	for _, want := range []string{
		"Current Epoch: 5",
		"Blocks: 100",
		"Transactions: 42",
		"Block Number: 200",
		"Block Hash: abc123",
		"Time: 2023-11-14T22:13:20.000Z",
		"Network Magic: 42",
		"Network ID: 0",
		"✓ All checks passed!",
	} {
		assert.Contains(t, out, want)
	}
}

func TestStatusDefaults(t *testing.T) {
	kit := &devKit{
		epoch: `{"epoch":5,"blkCount":100}`,
		block: `{"number":200,"hash":"abc123"}`,
	}
	base := kit.start(t)

	code, out, _ := run(t, base+"/")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Transactions: 0")
	assert.Contains(t, out, "Time: N/A")
	assert.NotContains(t, out, "//epochs")
}

func TestStatusConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api/v1"
	srv.Close()

	code, out, _ := run(t, base)

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Troubleshooting:")
	assert.Contains(t, out, "Is Yaci DevKit running?")
	assert.Contains(t, out, "Current: "+base)
	assert.NotContains(t, out, "Latest Block:")
	assert.NotContains(t, out, "All checks passed")
}

func TestStatusRequestFailures(t *testing.T) {
	tests := []struct {
		name        string
		kit         *devKit
		wantMsg     string
		wantBlkHits int32
	}{
		{
			name:        "epoch_server_error",
			kit:         &devKit{epoch: `oops`, epochCode: http.StatusInternalServerError},
			wantMsg:     "HTTP 500 Internal Server Error",
			wantBlkHits: 0,
		},
		{
			name:        "epoch_malformed_json",
			kit:         &devKit{epoch: `{"epoch":`},
			wantMsg:     "invalid JSON response",
			wantBlkHits: 0,
		},
		{
			name:        "block_malformed_json",
			kit:         &devKit{epoch: `{"epoch":1,"blkCount":1}`, block: `not json`},
			wantMsg:     "invalid JSON response",
			wantBlkHits: 1,
		},
		{
			name:        "epoch_null_body",
			kit:         &devKit{epoch: `null`, block: `{}`},
			wantMsg:     `invalid JSON response: missing "epoch"`,
			wantBlkHits: 0,
		},
		{
			name:        "epoch_empty_object",
			kit:         &devKit{epoch: `{}`},
			wantMsg:     `invalid JSON response: missing "epoch"`,
			wantBlkHits: 0,
		},
		{
			name:        "block_empty_object",
			kit:         &devKit{epoch: `{"epoch":1,"blkCount":1}`, block: `{}`},
			wantMsg:     `invalid JSON response: missing "number"`,
			wantBlkHits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.kit.start(t)

			code, out, _ := run(t, base)

			assert.Equal(t, 1, code)
			assert.Contains(t, out, "Error details:")
			assert.Contains(t, out, tt.wantMsg)
			assert.NotContains(t, out, "Troubleshooting:")
			assert.NotContains(t, out, "All checks passed")
			assert.Equal(t, int32(1), tt.kit.epochHits.Load())
			assert.Equal(t, tt.wantBlkHits, tt.kit.blkHits.Load())
		})
	}
}

func TestStatusJSONOutput(t *testing.T) {
	kit := &devKit{
		epoch: `{"epoch":5,"blkCount":100,"txCount":42}`,
		block: `{"number":200,"hash":"abc123","time":1700000000}`,
	}
	base := kit.start(t)

	code, out, _ := run(t, base, "--output", "json")
	require.Equal(t, 0, code)

	var doc struct {
		OK    bool `json:"ok"`
		Epoch struct {
			Transactions int64 `json:"transactions"`
		} `json:"epoch"`
		Block struct {
			Time string `json:"time"`
		} `json:"block"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.OK)
	assert.Equal(t, int64(42), doc.Epoch.Transactions)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", doc.Block.Time)
}

func TestStatusYAMLFailure(t *testing.T) {
	kit := &devKit{epoch: `x`, epochCode: http.StatusBadGateway}
	base := kit.start(t)

	code, out, _ := run(t, base, "-o", "yaml")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ok: false")
	assert.Contains(t, out, "kind: request_failed")
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad_output", []string{"--output", "xml"}, "invalid output format"},
		{"unknown_flag", []string{"--nope"}, "unknown flag"},
		{"positional_arg", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, "http://127.0.0.1:1/api/v1", tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	kit := &devKit{
		epoch: `{"epoch":5,"blkCount":100}`,
		block: `{"number":200,"hash":"abc123"}`,
	}
	base := kit.start(t)

	code, out, errOut := run(t, base, "--debug")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "/epochs/latest")
	assert.NotContains(t, out, "requesting")
}
