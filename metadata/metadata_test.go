package metadata

import (
	"context"
	"errors"
	"testing"
)

// stubRunner records the command it was asked to run and returns a
// fixed result.
type stubRunner struct {
	out  []byte
	err  error
	name string
	args []string
}

func (r *stubRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.name = name
	r.args = args
	return r.out, r.err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		out         string
		err         error
		wantSeconds int
		wantOK      bool
	}{
		{
			name:        "WholeSecondDuration",
			out:         `{"title":"clip","duration":374}`,
			wantSeconds: 374,
			wantOK:      true,
		},
		{
			name:        "FractionalDurationTruncated",
			out:         `{"duration":374.9}`,
			wantSeconds: 374,
			wantOK:      true,
		},
		{
			name:   "ProbeFails",
			err:    errors.New("exit status 1"),
			wantOK: false,
		},
		{
			name:   "MalformedOutput",
			out:    "not json",
			wantOK: false,
		},
		{
			name:   "MissingDurationField",
			out:    `{"title":"live stream"}`,
			wantOK: false,
		},
		{
			name:   "ZeroDuration",
			out:    `{"duration":0}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{out: []byte(tt.out), err: tt.err}
			r := New("", runner)

			seconds, ok := r.Resolve(context.Background(), "https://example.com/v")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && seconds != tt.wantSeconds {
				t.Errorf("seconds = %d, want %d", seconds, tt.wantSeconds)
			}
		})
	}
}

func TestResolveInvocation(t *testing.T) {
	runner := &stubRunner{out: []byte(`{"duration":10}`)}
	r := New("/opt/bin/yt-dlp", runner)
	r.Resolve(context.Background(), "https://example.com/v")

	if runner.name != "/opt/bin/yt-dlp" {
		t.Errorf("ran %q, want the configured binary path", runner.name)
	}
	var sawDump, sawURL bool
	for _, arg := range runner.args {
		if arg == "--dump-json" {
			sawDump = true
		}
		if arg == "https://example.com/v" {
			sawURL = true
		}
	}
	if !sawDump || !sawURL {
		t.Errorf("probe args missing --dump-json or the URL: %v", runner.args)
	}
}

func TestNewDefaults(t *testing.T) {
	r := New("", nil)
	if r.path != DefaultBinary {
		t.Errorf("path = %q, want %q", r.path, DefaultBinary)
	}
	if r.runner == nil {
		t.Error("runner should default to the exec implementation")
	}
}
