package fping

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"batchping/internal/config"
)

func TestBuildArgs(t *testing.T) {
	opts := config.DefaultOptions()
	args := BuildArgs(opts, []string{"1.1.1.1", "8.8.8.8"})

	want := []string{
		"-A", "-q",
		"-b", "56",
		"-B", "1.5",
		"-C", "1",
		"-i", "10",
		"-p", "1000",
		"-r", "3",
		"-t", "500",
		"-R",
		"1.1.1.1", "8.8.8.8",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("BuildArgs = %v, want %v", args, want)
	}
}

func TestBuildArgsNoRandom(t *testing.T) {
	opts := config.DefaultOptions()
	opts.NoRandom = true

	args := BuildArgs(opts, []string{"1.1.1.1"})
	for _, a := range args {
		if a == "-R" {
			t.Errorf("expected no -R flag, got %v", args)
		}
	}
}

func TestValidateTargets(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		want    []string
		wantErr string
	}{
		{
			name:    "valid IPv4",
			targets: []string{"1.1.1.1", "8.8.8.8"},
			want:    []string{"1.1.1.1", "8.8.8.8"},
		},
		{
			name:    "IPv6 canonicalized",
			targets: []string{"2001:DB8::1"},
			want:    []string{"2001:db8::1"},
		},
		{
			name:    "out of range octets",
			targets: []string{"999.999.999.999"},
			wantErr: "999.999.999.999",
		},
		{
			name:    "hostname rejected",
			targets: []string{"example.com"},
			wantErr: "example.com",
		},
		{
			name:    "first bad target aborts",
			targets: []string{"1.1.1.1", "not-an-ip", "also bad"},
			wantErr: "not-an-ip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTargets(tt.targets)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				var targetErr *InvalidTargetError
				if !errors.As(err, &targetErr) {
					t.Fatalf("expected InvalidTargetError, got %T: %v", err, err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not reference %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateTargets = %v, want %v", got, tt.want)
			}
		})
	}
}

// fakeRunner records the invocation and returns canned output
type fakeRunner struct {
	called bool
	path   string
	args   []string
	output string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, path string, args []string) (string, error) {
	f.called = true
	f.path = path
	f.args = args
	return f.output, f.err
}

func TestProbe(t *testing.T) {
	runner := &fakeRunner{output: "1.1.1.1 : 12.3\n8.8.8.8 : 10.0 - 20.0\n"}
	prober := NewWithRunner(runner)

	results, err := prober.Probe(context.Background(), []string{"1.1.1.1", "8.8.8.8"}, config.Options{Count: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !runner.called {
		t.Fatal("expected runner to be invoked")
	}
	if runner.args[len(runner.args)-2] != "1.1.1.1" || runner.args[len(runner.args)-1] != "8.8.8.8" {
		t.Errorf("expected targets appended in input order, got %v", runner.args)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if r := results["8.8.8.8"]; r.Sent != 3 || r.Received != 2 {
		t.Errorf("expected sent=3 received=2 for 8.8.8.8, got %+v", r)
	}
}

func TestProbeInvalidOption(t *testing.T) {
	tests := []struct {
		name string
		opts config.Options
		want string
	}{
		{"bytes too small", config.Options{Bytes: 39}, "Bytes must be at least 40 bytes"},
		{"negative count", config.Options{Count: -1}, "Count must be >= 1"},
		{"loss digits too small", config.Options{LossDigits: 1}, "lossDigits must be at least 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			prober := NewWithRunner(runner)

			_, err := prober.Probe(context.Background(), []string{"1.1.1.1"}, tt.opts)

			var optErr *config.InvalidOptionError
			if !errors.As(err, &optErr) {
				t.Fatalf("expected InvalidOptionError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
			if runner.called {
				t.Error("runner must not be invoked when validation fails")
			}
		})
	}
}

func TestProbeInvalidTarget(t *testing.T) {
	runner := &fakeRunner{}
	prober := NewWithRunner(runner)

	_, err := prober.Probe(context.Background(), []string{"999.999.999.999"}, config.Options{})

	var targetErr *InvalidTargetError
	if !errors.As(err, &targetErr) {
		t.Fatalf("expected InvalidTargetError, got %T: %v", err, err)
	}
	if targetErr.Target != "999.999.999.999" {
		t.Errorf("expected error to reference the target, got %q", targetErr.Target)
	}
	if runner.called {
		t.Error("runner must not be invoked when a target is invalid")
	}
}

func TestProbeToolNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	prober := New()
	_, err := prober.Probe(context.Background(), []string{"1.1.1.1"}, config.Options{})

	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestProbeIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping fping integration test in short mode")
	}

	if _, err := exec.LookPath(Binary); err != nil {
		t.Skip("fping binary not available on PATH")
	}

	prober := New()
	results, err := prober.Probe(context.Background(), []string{"127.0.0.1"}, config.Options{Count: 2})
	if err != nil {
		t.Skipf("skipping due to unexpected probe failure: %v", err)
	}

	r, ok := results["127.0.0.1"]
	if !ok {
		t.Fatalf("expected a result for 127.0.0.1, got %v", results)
	}

	t.Logf("Probe result: %+v", r)

	if r.Sent != 2 {
		t.Errorf("expected sent=2, got %d", r.Sent)
	}
	if r.Sent != len(r.Times) {
		t.Errorf("sent=%d but len(times)=%d", r.Sent, len(r.Times))
	}
}
